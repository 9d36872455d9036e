// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package normalize

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drawlots/drawlots/app"
	"github.com/drawlots/drawlots/roster"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <file>",
		Short: "Prints the normalized names of a roster",
		Long: `Loads file the way a draw would, prints one name per line and reports how
the envelope of the list compares to the plain text.`,
		Args: cobra.ExactArgs(1),
		RunE: normalizeFunc,
	}
}

func normalizeFunc(c *cobra.Command, args []string) error {
	return app.Execute(c, func(_ context.Context, a *app.App) error {
		r, err := roster.Load(args[0], a.Config.Session.Roster)
		if err != nil {
			return err
		}

		encoding := a.Config.Session.Roster.Encoding
		envelope, err := roster.Encode(r.Names, encoding)
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		plain := strings.Join(r.Names, "\n")
		fmt.Fprintln(out, plain)
		fmt.Fprintf(out, "\n%d names (%s), %d duplicates merged, %d empty entries dropped\n",
			len(r.Names),
			r.Charset,
			r.Duplicates,
			r.Dropped,
		)
		fmt.Fprintf(out, "%s %s\n", encoding, roster.Summarize(plain, envelope))
		return nil
	})
}
