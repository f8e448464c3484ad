package remove

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the remove command. Flags and RunE are wired by the
// root command, which owns the shared rule file and output settings.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.ExactArgs(1),
		Example: MsgExample,
		GroupID: "rules",
	}
}
