package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/lockpipe/internal/model"
)

// NewDeleteCommand creates the "delete" cobra command. Deleting a pipe that
// does not exist succeeds.
func NewDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete",
		Aliases: []string{"d"},
		Short:   "Deletes an existing LockPipe",
		Long: `Delete whatever is at the configured path.

The entry is not checked to be a pipe. If nothing is there the command
succeeds, since the path not existing is the requested outcome.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return model.StatusError(opts.controller.Delete())
		},
	}
}
