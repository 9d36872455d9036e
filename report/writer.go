// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package report

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/drawlots/drawlots/utils/perms"
	"github.com/drawlots/drawlots/utils/storage"
)

const (
	fileTimeLayout = "20060102_150405"
	fileExt        = ".html"

	// Results drawn within the same second get a numbered suffix. Give up
	// after this many.
	maxNameAttempts = 100
)

var (
	ErrEmptyResult = errors.New("empty result")

	errNoFreeName = errors.New("couldn't find a free report file name")
)

// Writer saves HTML reports to a directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

func (w *Writer) Dir() string {
	return w.dir
}

// Save writes the report of [r] to <label>_<YYYYMMDD_HHMMSS>.html and returns
// the path written. Results without items are not saved.
func (w *Writer) Save(r *Result) (string, error) {
	if len(r.Items) == 0 {
		return "", ErrEmptyResult
	}

	path, err := w.freePath(r)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := RenderHTML(&buf, r); err != nil {
		return "", fmt.Errorf("couldn't render report: %w", err)
	}
	if err := perms.WriteFile(path, buf.Bytes(), perms.ReadWrite); err != nil {
		return "", fmt.Errorf("couldn't write report: %w", err)
	}
	return path, nil
}

func (w *Writer) freePath(r *Result) (string, error) {
	base := fmt.Sprintf("%s_%s", r.Kind.Label(), r.DrawnAt.Format(fileTimeLayout))
	name := base + fileExt
	for i := 1; i <= maxNameAttempts; i++ {
		path := filepath.Join(w.dir, name)
		exists, err := storage.FileExists(path)
		if err != nil {
			return "", err
		}
		if !exists {
			return path, nil
		}
		name = fmt.Sprintf("%s_%d%s", base, i, fileExt)
	}
	return "", fmt.Errorf("%w: %s", errNoFreeName, base)
}
