// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/drawlots/drawlots/utils/perms"
)

// WriteTextfile writes everything [gatherer] collects to [path] in the text
// exposition format, so a node exporter textfile collector can pick it up.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, perms.ReadWriteExecute); err != nil {
		return fmt.Errorf("couldn't create directory %q: %w", dir, err)
	}
	return prometheus.WriteToTextfile(path, gatherer)
}
