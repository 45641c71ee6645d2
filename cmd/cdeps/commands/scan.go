package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the project and record its dependency map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			includeDirs, _ := cmd.Flags().GetStringArray("include-dir")

			snapshot, warnings, err := c.app.Scan(cmd.Context(), includeDirs)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(snapshot.Units, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))

			for _, warning := range warnings {
				cmd.PrintErrln("warning: " + warning.String())
			}
			if len(warnings) > 0 {
				cmd.PrintErrln(fmt.Sprintf("%d unresolved includes", len(warnings)))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayP("include-dir", "I", nil, "Additional include search directory (repeatable)")
	return cmd
}
