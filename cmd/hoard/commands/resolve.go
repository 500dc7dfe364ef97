package commands

import (
	"slices"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <component>...",
		Short: "Resolve components to their cached files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			single, _ := cmd.Flags().GetBool("single")
			results, err := c.app.Resolve(cmd.Context(), args, single)
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(results))
			for id := range results {
				ids = append(ids, id)
			}
			slices.Sort(ids)

			for _, id := range ids {
				for _, file := range results[id] {
					cmd.Printf("%s\t%s\n", id, file)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("single", false, "Require exactly one file per component")
	return cmd
}
