// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "names.txt")
	require.NoError(os.WriteFile(file, []byte("甲"), 0o600))

	exists, err := FileExists(file)
	require.NoError(err)
	require.True(exists)

	exists, err = FileExists(dir)
	require.NoError(err)
	require.False(exists)

	exists, err = FileExists(filepath.Join(dir, "missing"))
	require.NoError(err)
	require.False(exists)

	exists, err = FolderExists(dir)
	require.NoError(err)
	require.True(exists)
}

func TestWithExt(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "list", expected: "list.rcp"},
		{path: "list.rcp", expected: "list.rcp"},
		{path: "list.RCP", expected: "list.RCP"},
		{path: "list.txt", expected: "list.txt.rcp"},
	}
	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			require.Equal(t, test.expected, WithExt(test.path, ".rcp"))
		})
	}
	require.True(t, HasExt("a/b/names.Rcp", ".rcp"))
	require.False(t, HasExt("names.txt", ".rcp"))
}
