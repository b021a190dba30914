package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tableau/simplex"
)

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List the bundled example problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDIRECTION\tOBJECTIVE\tCONSTRAINTS")
			for _, e := range simplex.Examples() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Direction, e.Objective, strings.Join(e.Constraints, "; "))
			}
			return tw.Flush()
		},
	}
}
