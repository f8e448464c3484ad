package pack

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the pack command. Flags and RunE are wired by the
// root command, which owns the shared rule file and output settings.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "pack",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.NoArgs,
		Example: MsgExample,
		GroupID: "core",
	}
}
