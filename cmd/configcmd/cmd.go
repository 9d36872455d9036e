// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drawlots/drawlots/config"
)

const (
	defaultConfigFile = "drawlots.yaml"
	overwriteKey      = "overwrite"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Shows or creates config files",
	}
	c.AddCommand(
		showCommand(),
		initCommand(),
	)
	return c
}

func showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Prints the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			v, err := config.BuildViper(c.InheritedFlags())
			if err != nil {
				return err
			}
			if _, err := config.GetConfig(v); err != nil {
				return err
			}
			b, err := config.Settings(v)
			if err != nil {
				return err
			}
			_, err = c.OutOrStdout().Write(b)
			return err
		},
	}
}

func initCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "init [file]",
		Short: "Writes a config file holding the default values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			overwrite, err := c.Flags().GetBool(overwriteKey)
			if err != nil {
				return err
			}

			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefaults(path, overwrite); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	c.Flags().Bool(overwriteKey, false, "Replace an existing file")
	return c
}
