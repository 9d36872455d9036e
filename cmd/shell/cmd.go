// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package shell

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/drawlots/drawlots/app"
	"github.com/drawlots/drawlots/session"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "shell [file]",
		Short: "Starts an interactive session",
		Long: `Starts a session that keeps the selection history between draws. The roster
in file is loaded first. Without file, the sample roster of the data directory
is loaded if auto-load-sample is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: shellFunc,
	}
}

func shellFunc(c *cobra.Command, args []string) error {
	return app.Execute(c, func(ctx context.Context, a *app.App) error {
		s, err := a.NewSession()
		if err != nil {
			return err
		}
		defer s.Close()

		out := c.OutOrStdout()
		if len(args) == 1 {
			if _, err := s.LoadRoster(args[0]); err != nil {
				return err
			}
		} else if loaded, err := s.AutoLoad(); err != nil {
			// a broken sample shouldn't keep the shell from starting
			a.Log.Warn("couldn't load the sample roster",
				zap.Error(err),
			)
		} else if loaded {
			fmt.Fprintf(out, "loaded %d names from %s\n", len(s.Roster().Names), s.Roster().Path)
		}

		fmt.Fprintln(out, "type help for a list of commands")
		return session.NewShell(s, c.InOrStdin(), out).Run(ctx)
	})
}
