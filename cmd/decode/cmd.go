// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package decode

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drawlots/drawlots/app"
	"github.com/drawlots/drawlots/roster"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file>",
		Short: "Prints the names stored in an envelope",
		Long: `Decodes file as an envelope, whatever its extension, and prints the
stored text. The encoding is chosen with --encoding.`,
		Args: cobra.ExactArgs(1),
		RunE: decodeFunc,
	}
}

func decodeFunc(c *cobra.Command, args []string) error {
	return app.Execute(c, func(_ context.Context, a *app.App) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		text, err := roster.Decode(string(b), a.Config.Session.Roster.Encoding)
		if err != nil {
			return fmt.Errorf("couldn't decode %q: %w", args[0], err)
		}
		if text != "" {
			fmt.Fprintln(c.OutOrStdout(), text)
		}
		return nil
	})
}
