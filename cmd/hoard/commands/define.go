package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDefineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "define <component> <file>...",
		Short: "Register files as a local component",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Define(args[0], args[1:])
		},
	}
}
