package genconfig

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the genconfig command. Flags and RunE are wired by the
// root command, which owns the shared rule file and output settings.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.NoArgs,
		Example: MsgExample,
		GroupID: "misc",
	}
}
