// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

var drawnAt = time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
	}{
		{
			name: "group",
			result: &Result{
				ID:      uuid.MustParse("6f1d3c1e-6f0a-4f3b-9a55-0a4b0a3f1b2c"),
				Kind:    Group,
				Items:   []string{GroupLabel(1), GroupLabel(4), GroupLabel(7)},
				DrawnAt: drawnAt,
			},
		},
		{
			name: "person",
			result: &Result{
				ID:      uuid.MustParse("0b7e6a52-2d6c-4c1e-8d3e-51f0c8a9e4d7"),
				Kind:    Person,
				Items:   []string{"张三", "A<B>", "O'Neil"},
				DrawnAt: drawnAt,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderHTML(&buf, test.result))

			g := goldie.New(t)
			g.Assert(t, test.name, buf.Bytes())
		})
	}
}

func TestWriterSave(t *testing.T) {
	require := require.New(t)

	dir := filepath.Join(t.TempDir(), "results")
	w := NewWriter(dir)
	r := NewResult(Person, []string{"张三", "李四"}, drawnAt)

	path, err := w.Save(r)
	require.NoError(err)
	require.Equal(filepath.Join(dir, "随机抽人_20260314_092653.html"), path)

	content, err := os.ReadFile(path)
	require.NoError(err)
	require.Contains(string(content), "张三<br>李四")
	require.Contains(string(content), r.ID.String())

	// a second result in the same second doesn't replace the first
	path, err = w.Save(NewResult(Person, []string{"王五"}, drawnAt))
	require.NoError(err)
	require.Equal(filepath.Join(dir, "随机抽人_20260314_092653_1.html"), path)
}

func TestWriterSaveEmpty(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	_, err := NewWriter(dir).Save(NewResult(Group, nil, drawnAt))
	require.ErrorIs(err, ErrEmptyResult)

	entries, err := os.ReadDir(dir)
	require.NoError(err)
	require.Empty(entries)
}

func TestResultString(t *testing.T) {
	r := NewResult(Group, []string{"第1组", "第2组"}, drawnAt)
	require.Equal(t, "第1组, 第2组", r.String())
	require.NotEqual(t, uuid.Nil, r.ID)
}
