package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/lockpipe/internal/model"
)

// NewCreateCommand creates the "create" cobra command.
func NewCreateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "create",
		Aliases: []string{"c"},
		Short:   "Creates a new LockPipe",
		Long: `Create a named pipe at the configured path.

If anything already exists at the path it is left alone and the command
still succeeds. No check is made that the existing entry is a pipe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return model.StatusError(opts.controller.Create())
		},
	}
}
