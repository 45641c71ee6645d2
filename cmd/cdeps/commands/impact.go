package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newImpactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "impact [seeds...]",
		Short: "List the units impacted by changes to the given files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, _ := cmd.Flags().GetBool("changed")
			invert, _ := cmd.Flags().GetBool("invert")
			includeDirs, _ := cmd.Flags().GetStringArray("include-dir")

			if len(args) == 0 && !changed {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			result, err := c.app.Impact(cmd.Context(), args, changed, includeDirs)
			if err != nil {
				return err
			}

			units := result.Impacted
			if invert {
				units = result.Unimpacted
			}
			for _, unit := range units.Sorted() {
				cmd.Println(unit)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("changed", "c", false, "Seed from the files modified since the last scan")
	cmd.Flags().Bool("invert", false, "List the unimpacted units instead")
	cmd.Flags().StringArrayP("include-dir", "I", nil, "Additional include search directory (repeatable)")
	return cmd
}
