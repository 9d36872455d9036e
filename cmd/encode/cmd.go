// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package encode

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/drawlots/drawlots/app"
	"github.com/drawlots/drawlots/roster"
)

const (
	OutputDirKey   = "output-dir"
	OverwriteKey   = "overwrite"
	ConcurrencyKey = "concurrency"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "encode <file>...",
		Short: "Encodes rosters into envelopes",
		Long: `Normalizes every file and writes its names to an envelope (.rcp) named
after the file. The encoding is chosen with --encoding.`,
		Args: cobra.MinimumNArgs(1),
		RunE: encodeFunc,
	}
	AddFlags(c.Flags())
	return c
}

func AddFlags(flags *pflag.FlagSet) {
	flags.StringP(OutputDirKey, "o", ".", "Directory the envelopes are written to")
	flags.Bool(OverwriteKey, false, "Replace existing envelopes")
	flags.Int(ConcurrencyKey, 0, "Number of files encoded at once. 0 uses a small default")
}

type Config struct {
	OutputDir   string
	Overwrite   bool
	Concurrency int
}

func ParseFlags(flags *pflag.FlagSet) (*Config, error) {
	outputDir, err := flags.GetString(OutputDirKey)
	if err != nil {
		return nil, err
	}

	overwrite, err := flags.GetBool(OverwriteKey)
	if err != nil {
		return nil, err
	}

	concurrency, err := flags.GetInt(ConcurrencyKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		OutputDir:   outputDir,
		Overwrite:   overwrite,
		Concurrency: concurrency,
	}, nil
}

func encodeFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags())
	if err != nil {
		return err
	}

	return app.Execute(c, func(ctx context.Context, a *app.App) error {
		written, err := roster.EncodeFiles(ctx, args, config.OutputDir, roster.BatchOptions{
			Options:     a.Config.Session.Roster.Options,
			Encoding:    a.Config.Session.Roster.Encoding,
			Overwrite:   config.Overwrite,
			Concurrency: config.Concurrency,
		})
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		for i, path := range written {
			fmt.Fprintf(out, "%s -> %s\n", args[i], path)
		}
		return nil
	})
}
