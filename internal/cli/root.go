// Package cli implements the cobra-based CLI commands for lockpipe.
//
// Each subcommand (create, delete, exists, read, write) is defined in its
// own file within this package and maps one-to-one to a lockpipe.Controller
// method. This file defines the root command, which resolves configuration,
// builds the logger and the controller, and turns the controller's status
// into the process exit code.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/lockpipe/internal/config"
	"github.com/mmr-tortoise/lockpipe/internal/lockpipe"
	"github.com/mmr-tortoise/lockpipe/internal/logging"
	"github.com/mmr-tortoise/lockpipe/internal/model"
	"github.com/mmr-tortoise/lockpipe/internal/pipe"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootOptions holds the global flag values and the controller built from
// them. One instance is shared by the root command and its subcommands.
type rootOptions struct {
	// path overrides the configured pipe path when the flag is given.
	path string

	// configFile names an optional YAML or JSONC config file.
	configFile string

	// controller is set by the root command's PersistentPreRunE before any
	// subcommand runs.
	controller *lockpipe.Controller
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "lockpipe",
		Short: "Named pipe rendezvous between processes",
		Long: `lockpipe creates, deletes and uses a named pipe (FIFO) as a rendezvous
point between unrelated processes. "lockpipe read" blocks until another
process runs "lockpipe write" on the same path, and vice versa.

The exit status is 0 on success, 1 when "exists" finds nothing at the path,
and otherwise the OS error number of the failed operation.

Environment:
  LOCKPIPE_PATH        pipe path (default "` + config.DefaultPath + `")
  LOCKPIPE_CONFIG      YAML or JSONC config file
  LOCKPIPE_LOG_FILTER  trace, debug, info, warn, error or off (default "` + config.DefaultLogFilter + `")
  LOCKPIPE_LOG_STYLE   auto, always or never (default "` + config.DefaultLogStyle + `")`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// Controller failures are already logged; usage would only add noise.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Run decides whether an error still needs printing.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},

		// A bare "lockpipe" is a usage error, not a request for help.
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return model.NewCLIError(model.ExitUsage,
				"a command is required (create, delete, exists, read, write)")
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.path, "path", "p", config.DefaultPath,
		"sets the path for the pipe (env LOCKPIPE_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"config file to read (env LOCKPIPE_CONFIG)")

	rootCmd.AddCommand(NewCreateCommand(opts))
	rootCmd.AddCommand(NewDeleteCommand(opts))
	rootCmd.AddCommand(NewExistsCommand(opts))
	rootCmd.AddCommand(NewReadCommand(opts))
	rootCmd.AddCommand(NewWriteCommand(opts))

	return rootCmd
}

// setup resolves configuration (defaults, file, environment, then the
// --path flag), builds the logger and creates the controller.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return model.WrapCLIError(model.ExitUsage, "failed to load configuration", err)
	}

	// An explicit flag beats LOCKPIPE_PATH and the config file.
	if cmd.Flags().Changed("path") {
		if o.path == "" {
			return model.NewCLIError(model.ExitUsage, "--path must not be empty")
		}
		cfg.Path = o.path
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		return model.WrapCLIError(model.ExitUsage, "failed to set up logging", err)
	}

	o.controller = lockpipe.New(pipe.New(cfg.Path), logger)
	return nil
}

// Execute runs the root command and exits the process with its status.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	os.Exit(Run(rootCmd).Int())
}

// Run executes the root command and returns the exit status.
//
// Silent CLIErrors carry a controller status that has already been logged.
// Other CLIErrors are printed and carry their own status. Any remaining
// error comes from cobra itself (unknown command, bad flag) and maps to
// ExitUsage.
func Run(rootCmd *cobra.Command) model.ExitStatus {
	err := rootCmd.Execute()
	if err == nil {
		return model.ExitSuccess
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		if !cliErr.Silent {
			printError(rootCmd.ErrOrStderr(), cliErr.Message, cliErr.Err)
		}
		return cliErr.Code
	}

	printError(rootCmd.ErrOrStderr(), err.Error(), nil)
	return model.ExitUsage
}

// printError writes "Error: <message>" to w.
func printError(w io.Writer, message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}
