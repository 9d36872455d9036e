// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drawlots/drawlots/cmd/configcmd"
	"github.com/drawlots/drawlots/cmd/decode"
	"github.com/drawlots/drawlots/cmd/encode"
	"github.com/drawlots/drawlots/cmd/group"
	"github.com/drawlots/drawlots/cmd/normalize"
	"github.com/drawlots/drawlots/cmd/person"
	"github.com/drawlots/drawlots/cmd/shell"
	"github.com/drawlots/drawlots/cmd/verify"
	"github.com/drawlots/drawlots/config"
	"github.com/drawlots/drawlots/utils/constants"
	"github.com/drawlots/drawlots/version"
)

func main() {
	if err := rootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", constants.AppName, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   constants.AppName,
		Short: "Draws groups and names at random",
		Long: `drawlots draws numbered groups or names of a roster at random. With
--use-weighted-sampling, items that were drawn before become less likely to be
drawn again.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	c.PersistentFlags().AddFlagSet(config.BuildFlagSet())
	c.AddCommand(
		group.Command(),
		person.Command(),
		encode.Command(),
		decode.Command(),
		normalize.Command(),
		verify.Command(),
		shell.Command(),
		configcmd.Command(),
		versionCommand(),
	)
	return c
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version details",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.String())
			return nil
		},
	}
}
