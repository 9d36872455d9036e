// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drawlots/drawlots/app"
	"github.com/drawlots/drawlots/roster"
	"github.com/drawlots/drawlots/utils/formatting"
)

var encodings = []formatting.Encoding{
	formatting.Base64,
	formatting.CB58,
}

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Checks that every encoding round trips",
		Args:  cobra.NoArgs,
		RunE:  verifyFunc,
	}
}

func verifyFunc(c *cobra.Command, _ []string) error {
	return app.Execute(c, func(context.Context, *app.App) error {
		out := c.OutOrStdout()
		for _, encoding := range encodings {
			if err := roster.SelfTest(encoding); err != nil {
				return fmt.Errorf("%s: %w", encoding, err)
			}
			fmt.Fprintf(out, "%s: ok\n", encoding)
		}
		return nil
	})
}
