package cmd

import (
	"fmt"
	"io"
	"strings"

	"routerswitch/config"
	"routerswitch/config/validation"
	"routerswitch/internal/envcmd"
	"routerswitch/internal/shell"
	"routerswitch/internal/utils"
)

// run is the whole switch: resolve inputs, validate, stage statements, print.
// Nothing reaches stdout unless every step succeeded.
func run(opts *Options, deps Deps) error {
	out := newReporter(deps.Stderr, opts.Verbose)

	shellName := opts.Shell
	if shellName == "" {
		shellName, _ = deps.LookupEnv(ShellEnvVar)
	}
	renderer, err := shell.ForName(shellName)
	if err != nil {
		return &ArgumentError{Err: err}
	}

	envPath, _ := deps.LookupEnv(config.PathEnvVar)
	path := config.ResolvePath(opts.Config, envPath)

	if opts.Install {
		if renderer.Name() != "posix" {
			return &ArgumentError{Err: fmt.Errorf("--install only supports posix shells")}
		}
		return runInstall(path, deps.Stdout, out)
	}

	if opts.Provider == "" && !opts.Select {
		return errNoProvider
	}

	out.Verbosef("loading config from %s", path)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	out.Verbosef("found %d providers: %s", len(cfg.Providers), strings.Join(cfg.Names(), ", "))

	current, _ := deps.LookupEnv(envcmd.CurrentProviderVar)

	if opts.Select {
		choice, err := deps.Select(cfg, current)
		if err != nil {
			return err
		}
		opts.Provider = choice.Provider
		opts.Model = choice.Model
	}

	if err := validation.ValidateProviderAndModel(cfg, opts.Provider, opts.Model); err != nil {
		return err
	}

	provider, _ := cfg.Get(opts.Provider)
	for _, w := range validation.Lint(provider) {
		out.Warnf("provider %s: %s", provider.Name, w)
	}
	if opts.Model != "" && len(provider.Models) == 0 {
		out.Warnf("provider %s declares no models; --model %s is ignored", provider.Name, opts.Model)
	}

	var staged []envcmd.Statement
	if current != "" {
		clearStmts := envcmd.ClearCommands(cfg, current)
		if len(clearStmts) == 0 {
			out.Verbosef("previous provider %s is not in the config, nothing to clear", current)
		} else {
			out.Verbosef("clearing previous provider %s", current)
		}
		staged = append(staged, clearStmts...)
	}

	setStmts, err := envcmd.SetCommands(cfg, opts.Provider, opts.Model)
	if err != nil {
		return err
	}
	staged = append(staged, setStmts...)

	out.Verbosef("switching to %s (host %s, token %s, %d extra variables)",
		provider.Name, utils.ExtractHost(provider.BaseURL), utils.MaskAPIKey(provider.APIKey), len(provider.Env))

	var buf strings.Builder
	for _, line := range shell.RenderAll(renderer, staged) {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	_, err = io.WriteString(deps.Stdout, buf.String())
	return err
}
