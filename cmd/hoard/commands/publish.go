package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <component>",
		Short: "Push a locally cached component to the global store",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.Publish(args[0])
		},
	}
}

func (c *CLI) newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <component>",
		Short: "Remove a component's artifact from the global store",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.Clear(args[0])
		},
	}
}
