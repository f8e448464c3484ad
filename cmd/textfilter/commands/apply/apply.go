package apply

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the apply command. Flags and RunE are wired by the
// root command, which owns the shared rule file and output settings.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "apply [text...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
	}
}
