// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewMillisecondsLatencyMetric(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	latency := NewMillisecondsLatencyMetric("drawlots", "roster_load", "source")
	require.NoError(registry.Register(latency))

	latency.WithLabelValues("file").Observe(3)
	latency.WithLabelValues("file").Observe(700)
	require.Equal(1, testutil.CollectAndCount(latency))

	families, err := registry.Gather()
	require.NoError(err)
	require.Len(families, 1)
	require.Equal("drawlots_roster_load_duration_ms", families[0].GetName())
	require.Equal(uint64(2), families[0].GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestWriteTextfile(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "drawlots",
		Name:      "test_total",
		Help:      "test counter",
	})
	require.NoError(registry.Register(counter))
	counter.Add(3)

	path := filepath.Join(t.TempDir(), "nested", "drawlots.prom")
	require.NoError(WriteTextfile(path, registry))

	content, err := os.ReadFile(path)
	require.NoError(err)
	require.Contains(string(content), "drawlots_test_total 3")
}
