package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"routerswitch/config/models"
	"routerswitch/internal/tui"

	"github.com/spf13/cobra"
)

// Version information
var (
	version = "3.0.0"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information; empty values keep the defaults
func SetVersionInfo(v, c, d string) {
	if v != "" {
		version = strings.TrimPrefix(v, "v")
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
}

// ShellEnvVar selects the default output dialect when --shell is not given
const ShellEnvVar = "ROUTERSWITCH_SHELL"

const helpText = `RouterSwitch CLI Tool
=====================
A CLI tool to switch between AI providers and models for Claude Code

This tool outputs shell commands to set environment variables.
Use eval to execute the commands in your shell: eval "$(router-switch -p provider)"

Usage: router-switch [options]

Options:
  -p, --provider <provider>  Specify AI provider from config.json
  -m, --model <model>        Specify AI model for the provider
  -c, --config <path>        Specify custom configuration file path
  -s, --select               Pick provider and model interactively
      --shell <posix|fish>   Output dialect (default posix)
      --verbose              Show detailed output on stderr
  -i, --install              Generate shell wrapper function for easy usage
  -v, --version              Display version information
  -h, --help                 Display this help message

Examples:
  eval "$(router-switch --provider deepseek --model deepseek-chat)"
  eval "$(router-switch -p glm)"
  eval "$(router-switch --select)"
  router-switch -p glm --shell fish | source                        # fish
  router-switch --install >> ~/.zshrc && source ~/.zshrc            # Install wrapper

Installation:
  Run 'router-switch --install' to generate a shell wrapper function.
  Add the output to your ~/.zshrc or ~/.bashrc, then reload your shell.
  After installation, you can use: router-switch deepseek

Configuration:
  Uses config.json in the current directory for provider definitions by default.
  Use --config or $ROUTERSWITCH_CONFIG to point at another file.
`

// Options holds the parsed command line
type Options struct {
	Provider string
	Model    string
	Config   string
	Shell    string
	Verbose  bool
	Install  bool
	Select   bool
}

// Deps are the process facilities the command reads from and writes to
type Deps struct {
	LookupEnv func(key string) (string, bool)
	Stdout    io.Writer
	Stderr    io.Writer
	Select    func(cfg *models.Config, current string) (tui.Choice, error)
}

// DefaultDeps wires the real process environment and standard streams
func DefaultDeps() Deps {
	return Deps{
		LookupEnv: os.LookupEnv,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Select:    tui.Run,
	}
}

// NewRootCommand builds the router-switch command
func NewRootCommand(deps Deps) *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:     "router-switch",
		Short:   "Switch AI provider environment variables for Claude Code",
		Long:    "Print export/unset statements that switch the active AI provider. Use: eval \"$(router-switch -p <provider>)\"",
		Version: version,
		// Positionals are accepted and ignored
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rejectFlagValues(cmd, opts); err != nil {
				return err
			}
			return run(opts, deps)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.Provider, "provider", "p", "", "Specify AI provider from config.json")
	flags.StringVarP(&opts.Model, "model", "m", "", "Specify AI model for the provider")
	flags.StringVarP(&opts.Config, "config", "c", "", "Specify custom configuration file path")
	flags.StringVar(&opts.Shell, "shell", "", "Output dialect: posix or fish")
	flags.BoolVar(&opts.Verbose, "verbose", false, "Show detailed output on stderr")
	flags.BoolVarP(&opts.Install, "install", "i", false, "Generate shell wrapper function for easy usage")
	flags.BoolVarP(&opts.Select, "select", "s", false, "Pick provider and model interactively")
	flags.BoolP("version", "v", false, "Display version information")
	flags.BoolP("help", "h", false, "Display this help message")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ArgumentError{Err: err}
	})
	rootCmd.SetHelpTemplate(helpText)
	rootCmd.SetVersionTemplate(versionTemplate())
	rootCmd.SetOut(deps.Stdout)
	rootCmd.SetErr(deps.Stderr)

	return rootCmd
}

// rejectFlagValues fails when a string flag swallowed the next option as its
// value, as in "-p -m m1"
func rejectFlagValues(cmd *cobra.Command, opts *Options) error {
	values := []struct {
		name  string
		value string
	}{
		{"provider", opts.Provider},
		{"model", opts.Model},
		{"config", opts.Config},
		{"shell", opts.Shell},
	}
	for _, v := range values {
		if cmd.Flags().Changed(v.name) && strings.HasPrefix(v.value, "-") {
			return &ArgumentError{Err: fmt.Errorf("option --%s needs a value, got %q", v.name, v.value)}
		}
	}
	return nil
}

func versionTemplate() string {
	tmpl := "router-switch v{{.Version}}\n"
	if commit != "none" {
		tmpl += "Commit: " + commit + "\nDate: " + date + "\n"
	}
	return tmpl
}

// Execute runs the command against the real process and returns the exit code
func Execute() int {
	deps := DefaultDeps()
	if err := NewRootCommand(deps).Execute(); err != nil {
		newReporter(deps.Stderr, false).Error(err)
		return 1
	}
	return 0
}
