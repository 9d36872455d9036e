// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/drawlots/drawlots/utils/metric"
	"github.com/drawlots/drawlots/utils/wrappers"
)

const (
	kindLabel   = "kind"
	sourceLabel = "source"

	sourceFile  = "file"
	sourceCache = "cache"
)

type metrics struct {
	draws,
	selectedItems,
	rosterLoads *prometheus.CounterVec

	rosterLoadDuration *prometheus.HistogramVec
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		draws: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "draws_total",
				Help:      "Number of successful draws",
			},
			[]string{kindLabel},
		),
		selectedItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "selected_items_total",
				Help:      "Number of items returned by successful draws",
			},
			[]string{kindLabel},
		),
		rosterLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "roster_loads_total",
				Help:      "Number of rosters loaded",
			},
			[]string{sourceLabel},
		),
		rosterLoadDuration: metric.NewMillisecondsLatencyMetric(namespace, "roster_load", sourceLabel),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.draws),
		registerer.Register(m.selectedItems),
		registerer.Register(m.rosterLoads),
		registerer.Register(m.rosterLoadDuration),
	)
	return m, errs.Err
}
