// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package roster

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/drawlots/drawlots/utils/formatting"
)

const defaultBatchConcurrency = 4

var errDuplicateOutput = errors.New("inputs map to the same envelope")

type BatchOptions struct {
	Options
	Encoding  formatting.Encoding
	Overwrite bool
	// Concurrency bounds the number of files processed at once. Zero uses a
	// small default.
	Concurrency int
}

// EncodeFiles loads every file in [paths] and writes its names to an envelope
// in [outDir] named after the input file. The written paths are returned in
// the order of [paths]. The first failure cancels the files that haven't
// started yet.
func EncodeFiles(ctx context.Context, paths []string, outDir string, opts BatchOptions) ([]string, error) {
	destinations := make([]string, len(paths))
	seen := make(map[string]string, len(paths))
	for i, path := range paths {
		base := filepath.Base(path)
		dest := filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base)))
		if other, ok := seen[dest]; ok {
			return nil, fmt.Errorf("%w: %q and %q", errDuplicateOutput, other, path)
		}
		seen[dest] = path
		destinations[i] = dest
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	loadOpts := LoadOptions{
		Options:  opts.Options,
		Encoding: opts.Encoding,
	}
	written := make([]string, len(paths))
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := Load(path, loadOpts)
			if err != nil {
				return err
			}
			written[i], err = WriteEnvelope(destinations[i], r.Names, opts.Encoding, opts.Overwrite)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return written, nil
}
