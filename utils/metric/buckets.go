// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

// MillisecondsBuckets cover file reads, from a cached roster to a large
// spreadsheet export.
var MillisecondsBuckets = []float64{
	1,    // 1 ms is ~ instant
	5,    // 5 ms
	10,   // 10 ms
	50,   // 50 ms
	100,  // 100 ms
	250,  // 250 ms
	500,  // 500 ms
	1000, // 1 second
	// anything larger than a second will be bucketed together
}
