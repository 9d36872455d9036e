// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// NewMillisecondsLatencyMetric returns a histogram of the time spent on
// [name], labeled by [labels].
func NewMillisecondsLatencyMetric(namespace, name string, labels ...string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      fmt.Sprintf("%s_duration_ms", name),
			Help:      fmt.Sprintf("time spent on %s in milliseconds", name),
			Buckets:   MillisecondsBuckets,
		},
		labels,
	)
}
