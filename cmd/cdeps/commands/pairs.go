package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "List the project's compilation units and their paired files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pairs, err := c.app.Pairs(cmd.Context())
			if err != nil {
				return err
			}

			for _, pair := range pairs {
				switch {
				case pair.HasSource() && pair.HasHeader():
					cmd.Println(pair.Source + " + " + pair.Header)
				case pair.HasSource():
					cmd.Println(pair.Source)
				default:
					cmd.Println(pair.Header)
				}
			}
			return nil
		},
	}
}
