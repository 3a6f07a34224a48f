package main

import (
	"fmt"
	"strconv"

	"github.com/on-the-ground/kosmos/sequences"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeqCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seq NAME FROM [TO]",
		Short: "Print terms FROM..TO of a univariate sequence",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, ok := sequences.Named()[args[0]]
			if !ok {
				return fmt.Errorf("unknown sequence %q, see kosmos list", args[0])
			}
			from, to, err := parseRange(args[1:])
			if err != nil {
				return err
			}
			opts, closeTables, err := a.cfg.RecurrenceOptions(a.logger)
			if err != nil {
				return err
			}
			defer closeTables()

			seq := ctor(opts...)
			terms, err := seq.Terms(from, to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, v := range terms {
				nameStyle.Fprintf(out, "%s(%d)", seq.Name(), from+i)
				fmt.Fprintf(out, " = %s\n", v)
			}
			a.logger.Debug("sequence evaluated",
				zap.String("sequence", seq.Name()),
				zap.Int("from", from),
				zap.Int("to", to),
				zap.Int("cached", seq.Len()),
			)
			return nil
		},
	}
}

func newLatticeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lattice NAME N [K]",
		Short: "Print row N of a bivariate sequence, or the single entry (N, K)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, ok := sequences.NamedLattices()[args[0]]
			if !ok {
				return fmt.Errorf("unknown lattice %q, see kosmos list", args[0])
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("row: %w", err)
			}
			opts, closeTables, err := a.cfg.RecurrenceOptions(a.logger)
			if err != nil {
				return err
			}
			defer closeTables()

			lat := ctor(opts...)
			out := cmd.OutOrStdout()
			if len(args) == 3 {
				k, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("column: %w", err)
				}
				v, err := lat.Value(n, k)
				if err != nil {
					return err
				}
				nameStyle.Fprintf(out, "%s(%d, %d)", lat.Name(), n, k)
				fmt.Fprintf(out, " = %s\n", v)
				return nil
			}

			row, err := lat.Row(n)
			if err != nil {
				return err
			}
			nameStyle.Fprintf(out, "%s(%d, *)", lat.Name(), n)
			fmt.Fprintf(out, " = %v\n", row)
			return nil
		},
	}
}

func parseRange(args []string) (from, to int, err error) {
	if from, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("from: %w", err)
	}
	to = from
	if len(args) > 1 {
		if to, err = strconv.Atoi(args[1]); err != nil {
			return 0, 0, fmt.Errorf("to: %w", err)
		}
	}
	if to < from {
		return 0, 0, fmt.Errorf("empty range %d..%d", from, to)
	}
	return from, to, nil
}
