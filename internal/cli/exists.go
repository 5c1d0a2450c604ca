package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/lockpipe/internal/model"
)

// NewExistsCommand creates the "exists" cobra command.
func NewExistsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "exists",
		Aliases: []string{"e"},
		Short:   "Checks if a LockPipe exists",
		Long: `Check whether anything exists at the configured path.

Exits 0 when something is there (of any type), 1 when nothing is, and
with the OS error number when the check itself fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return model.StatusError(opts.controller.Exists())
		},
	}
}
