// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FileExists checks if a file exists before we
// try using it to prevent further errors.
func FileExists(filePath string) (bool, error) {
	info, err := os.Stat(filePath)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FolderExists checks if a folder exists before we
// try using it to prevent further errors.
func FolderExists(filePath string) (bool, error) {
	info, err := os.Stat(filePath)
	if err == nil {
		return info.IsDir(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WithExt returns [filePath] ending in [ext]. The comparison is case
// insensitive so "list.RCP" is left untouched.
func WithExt(filePath string, ext string) string {
	if strings.EqualFold(filepath.Ext(filePath), ext) {
		return filePath
	}
	return filePath + ext
}

// HasExt reports whether [filePath] ends in [ext], ignoring case.
func HasExt(filePath string, ext string) bool {
	return strings.EqualFold(filepath.Ext(filePath), ext)
}
