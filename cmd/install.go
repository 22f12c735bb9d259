package cmd

import (
	"io"

	"routerswitch/config"
	"routerswitch/internal/shell"
)

// runInstall prints the shell wrapper function with completion for the
// providers in the config at path
func runInstall(path string, stdout io.Writer, out *reporter) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	gen, skipped := shell.NewGenerator(cfg)
	for _, err := range skipped {
		out.Warnf("left out of completion: %v", err)
	}

	script, err := gen.Generate()
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout, script)
	return err
}
