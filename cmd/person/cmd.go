// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package person

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/drawlots/drawlots/app"
	"github.com/drawlots/drawlots/report"
	"github.com/drawlots/drawlots/session"
)

const RoundsKey = "rounds"

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "person <file> [count]",
		Short: "Draws names from a roster",
		Long: `Draws count names from the roster stored in file. Envelopes (.rcp) are
decoded first. With --rounds the draw is repeated and the selection counts are
printed, which shows the effect of --use-weighted-sampling.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: personFunc,
	}
	AddFlags(c.Flags())
	return c
}

func AddFlags(flags *pflag.FlagSet) {
	flags.Int(RoundsKey, 1, "Number of consecutive draws")
}

func personFunc(c *cobra.Command, args []string) error {
	rounds, err := c.Flags().GetInt(RoundsKey)
	if err != nil {
		return err
	}
	if rounds < 1 {
		return fmt.Errorf("%w: rounds (%d) < 1", session.ErrInvalidArgument, rounds)
	}

	return app.Execute(c, func(ctx context.Context, a *app.App) error {
		counts, err := session.ParseInts(args[1:], a.Config.Session.PersonChoiceDefault)
		if err != nil {
			return err
		}

		s, err := a.NewSession()
		if err != nil {
			return err
		}
		defer s.Close()

		if _, err := s.LoadRoster(args[0]); err != nil {
			return err
		}

		out := c.OutOrStdout()
		for round := 1; round <= rounds; round++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := s.DrawPersons(counts[0])
			if err != nil {
				return err
			}
			if rounds > 1 {
				fmt.Fprintf(out, "round %d ", round)
			}
			session.PrintResult(out, result)
		}

		if rounds > 1 {
			stats, err := s.Stats(report.Person)
			if err != nil {
				return err
			}
			session.PrintStats(out, report.Person, stats)
		}
		return nil
	})
}
