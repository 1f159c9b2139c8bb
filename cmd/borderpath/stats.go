package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print country, border and component counts of the loaded dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, g, err := setup(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "countries:  %d\n", g.NodeCount())
			fmt.Fprintf(out, "borders:    %d\n", g.EdgeCount())
			fmt.Fprintf(out, "components: %d\n", g.ComponentCount())

			return nil
		},
	}
}
