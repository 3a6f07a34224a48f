package main

import (
	"fmt"
	"io"

	"github.com/on-the-ground/kosmos/internal/catalog"
	"github.com/on-the-ground/kosmos/laws"
	"github.com/on-the-ground/kosmos/laws/book"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLawsCmd(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "laws [CHECK...]",
		Short: "Check algebraic laws over the cataloged instances",
		Long: `Check algebraic laws over the cataloged instances.

With no arguments every check runs. Checks marked "counterexample" are
expected to fail and count as unexpected only if they pass.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			checks, err := selectChecks(args)
			if err != nil {
				return err
			}
			b, err := book.NewBook()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			opts := a.cfg.LawOptions(a.logger)
			unexpected := 0
			for _, c := range checks {
				suite, err := c.Suite()
				if err != nil {
					return fmt.Errorf("%s: %w", c.Name, err)
				}
				report := suite.Run(opts...)
				if err := b.Record(report); err != nil {
					return err
				}
				if !printReport(out, c, report, verbose) {
					unexpected++
				}
			}

			failures, err := b.Failures()
			if err != nil {
				return err
			}
			errs, err := b.Errors()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d checks, %d unexpected, %d laws falsified, %d not checkable\n",
				len(checks), unexpected, len(failures), len(errs))
			a.logger.Info("laws finished",
				zap.Int("checks", len(checks)),
				zap.Int("unexpected", unexpected),
			)
			if unexpected > 0 {
				return fmt.Errorf("%d checks did not behave as cataloged", unexpected)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every law, not only the falsified ones")
	return cmd
}

func selectChecks(names []string) ([]catalog.Check, error) {
	if len(names) == 0 {
		return catalog.Checks(), nil
	}
	checks := make([]catalog.Check, 0, len(names))
	for _, name := range names {
		c, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, nil
}

// printReport writes one check and reports whether it matched its
// cataloged expectation.
func printReport(w io.Writer, c catalog.Check, r laws.Report, verbose bool) bool {
	passed := r.Passed()
	errored := len(r.Errors()) > 0
	expected := !errored && passed == c.Holds

	switch {
	case errored:
		failStyle.Fprint(w, "ERROR")
	case passed && c.Holds:
		passStyle.Fprint(w, "PASS ")
	case !passed && !c.Holds:
		xfailStyle.Fprint(w, "XFAIL")
	default:
		failStyle.Fprint(w, "FAIL ")
	}
	fmt.Fprint(w, " ")
	nameStyle.Fprint(w, c.Name)
	dimStyle.Fprintf(w, "  %s [%s, seed %d]\n", c.Description, r.Suite, r.Seed)

	for _, o := range r.Outcomes {
		switch o.Status {
		case laws.Passed:
			if verbose {
				fmt.Fprintf(w, "    ok    %s (%d samples)\n", o.Law, o.Succeeded)
			}
		case laws.Failed:
			fmt.Fprint(w, "    ")
			failStyle.Fprint(w, "fail")
			fmt.Fprintf(w, "  %s\n          %s\n", o.Law, o.Counterexample)
		case laws.Errored:
			fmt.Fprint(w, "    ")
			failStyle.Fprint(w, "error")
			fmt.Fprintf(w, " %s: %v\n", o.Law, o.Cause)
		}
	}
	return expected
}
