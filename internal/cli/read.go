package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/lockpipe/internal/model"
)

// NewReadCommand creates the "read" cobra command.
func NewReadCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "read",
		Aliases: []string{"r"},
		Short:   "Reads from an existing LockPipe",
		Long: `Block until another process writes to the pipe.

The pipe is created first if nothing exists at the path. Every reader
waiting on the pipe is released when a writer completes.

Examples:
  lockpipe --path /tmp/deploy.lock read &
  lockpipe --path /tmp/deploy.lock write`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return model.StatusError(opts.controller.Read(cmd.Context()))
		},
	}
}
