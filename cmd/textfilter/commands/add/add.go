package add

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the add command. Flags and RunE are wired by the
// root command, which owns the shared rule file and output settings.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add <name> <pattern> [replacement]",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.RangeArgs(2, 3),
		Example: MsgExample,
		GroupID: "rules",
	}
}
