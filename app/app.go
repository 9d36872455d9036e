// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/drawlots/drawlots/config"
	"github.com/drawlots/drawlots/session"
	"github.com/drawlots/drawlots/utils/constants"
	"github.com/drawlots/drawlots/utils/logging"
	"github.com/drawlots/drawlots/utils/metric"
)

// App holds what every command of drawlots runs on.
type App struct {
	Config   config.Config
	Log      logging.Logger
	Registry *prometheus.Registry

	logFactory logging.Factory
}

// New builds the App configured by [v].
func New(v *viper.Viper) (*App, error) {
	c, err := config.GetConfig(v)
	if err != nil {
		return nil, fmt.Errorf("couldn't load config: %w", err)
	}

	logFactory := logging.NewFactory(c.Logging)
	log, err := logFactory.Make(constants.AppName)
	if err != nil {
		logFactory.Close()
		return nil, fmt.Errorf("couldn't create logger: %w", err)
	}

	return &App{
		Config:     c,
		Log:        log,
		Registry:   prometheus.NewRegistry(),
		logFactory: logFactory,
	}, nil
}

// NewSession returns a session registered with the App's metrics.
func (a *App) NewSession() (*session.Session, error) {
	return session.New(a.Config.Session, a.Log, a.Registry)
}

// Close writes the metrics file, if one is configured, and stops the loggers.
func (a *App) Close() error {
	var err error
	if a.Config.MetricsFile != "" {
		err = metric.WriteTextfile(a.Config.MetricsFile, a.Registry)
		if err != nil {
			a.Log.Error("couldn't write metrics",
				zap.String("path", a.Config.MetricsFile),
				zap.Error(err),
			)
		}
	}
	a.logFactory.Close()
	return err
}

// Execute builds an App out of the parsed flags of [c], runs [f] with it and
// closes the App afterwards.
func Execute(c *cobra.Command, f func(ctx context.Context, a *App) error) error {
	v, err := config.BuildViper(c.Flags())
	if err != nil {
		return err
	}
	a, err := New(v)
	if err != nil {
		return err
	}

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	err = Run(ctx, func(ctx context.Context) error {
		return f(ctx, a)
	})
	if err != nil {
		a.Log.Debug("command failed",
			zap.String("command", c.CommandPath()),
			zap.Error(err),
		)
	}
	return errors.Join(err, a.Close())
}

// Run executes [f] with a context that is canceled once the process receives
// SIGINT or SIGTERM.
func Run(ctx context.Context, f func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// register signals to stop the command
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	// start up a new go routine to handle attempts to stop the command
	var eg errgroup.Group
	eg.Go(func() error {
		for range signals {
			cancel()
			return nil
		}
		return nil
	})

	err := f(ctx)

	// shut down the signal go routine
	signal.Stop(signals)
	close(signals)
	_ = eg.Wait()
	return err
}
