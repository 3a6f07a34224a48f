package main

import (
	"fmt"
	"strings"

	"github.com/on-the-ground/kosmos/internal/catalog"
	"github.com/on-the-ground/kosmos/sequences"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the sequences, lattices and law checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			univariate, bivariate := sequences.Names()

			nameStyle.Fprintln(out, "sequences")
			fmt.Fprintf(out, "  %s\n", strings.Join(univariate, " "))
			nameStyle.Fprintln(out, "lattices")
			fmt.Fprintf(out, "  %s\n", strings.Join(bivariate, " "))
			nameStyle.Fprintln(out, "checks")
			for _, c := range catalog.Checks() {
				fmt.Fprintf(out, "  %-32s %s", c.Name, c.Description)
				if !c.Holds {
					dimStyle.Fprint(out, " (counterexample)")
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
