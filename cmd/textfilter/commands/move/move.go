package move

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the move command. Flags and RunE are wired by the
// root command, which owns the shared rule file and output settings.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "move <from> <to>",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.ExactArgs(2),
		Example: MsgExample,
		GroupID: "rules",
	}
}
