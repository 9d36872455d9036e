// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package group

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/drawlots/drawlots/app"
	"github.com/drawlots/drawlots/session"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "group [total] [count]",
		Short: "Draws groups numbered 1 to total",
		Long: `Draws count of the groups numbered 1 to total. Missing values are taken
from group-total-default and group-choice-default.`,
		Args: cobra.MaximumNArgs(2),
		RunE: groupFunc,
	}
}

func groupFunc(c *cobra.Command, args []string) error {
	return app.Execute(c, func(_ context.Context, a *app.App) error {
		ints, err := session.ParseInts(
			args,
			a.Config.Session.GroupTotalDefault,
			a.Config.Session.GroupChoiceDefault,
		)
		if err != nil {
			return err
		}

		s, err := a.NewSession()
		if err != nil {
			return err
		}
		defer s.Close()

		result, err := s.DrawGroups(ints[0], ints[1])
		if err != nil {
			return err
		}
		session.PrintResult(c.OutOrStdout(), result)
		return nil
	})
}
