package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/lockpipe/internal/model"
)

// NewWriteCommand creates the "write" cobra command.
func NewWriteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "write",
		Aliases: []string{"w"},
		Short:   "Writes to an existing LockPipe",
		Long: `Block until another process reads from the pipe.

The pipe is created first if nothing exists at the path. No data is sent;
the write only signals the readers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return model.StatusError(opts.controller.Write(cmd.Context()))
		},
	}
}
