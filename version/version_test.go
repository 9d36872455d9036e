// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSemanticString(t *testing.T) {
	v := &Semantic{
		Major: 1,
		Minor: 2,
		Patch: 3,
	}
	require.Equal(t, "v1.2.3", v.String())
}

func TestSemanticCompare(t *testing.T) {
	tests := []struct {
		name     string
		a        *Semantic
		b        *Semantic
		expected int
	}{
		{
			name:     "equal",
			a:        &Semantic{Major: 1, Minor: 2, Patch: 3},
			b:        &Semantic{Major: 1, Minor: 2, Patch: 3},
			expected: 0,
		},
		{
			name:     "major",
			a:        &Semantic{Major: 2},
			b:        &Semantic{Major: 1, Minor: 9, Patch: 9},
			expected: 1,
		},
		{
			name:     "minor",
			a:        &Semantic{Major: 1, Minor: 1},
			b:        &Semantic{Major: 1, Minor: 2},
			expected: -1,
		},
		{
			name:     "patch",
			a:        &Semantic{Major: 1, Minor: 2, Patch: 4},
			b:        &Semantic{Major: 1, Minor: 2, Patch: 3},
			expected: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			require.Equal(test.expected, sign(test.a.Compare(test.b)))
			require.Equal(-test.expected, sign(test.b.Compare(test.a)))
		})
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func TestParse(t *testing.T) {
	require := require.New(t)

	v, err := Parse("v1.2.3")
	require.NoError(err)
	require.Equal(&Semantic{Major: 1, Minor: 2, Patch: 3}, v)

	v, err = Parse(Current.String())
	require.NoError(err)
	require.Zero(Current.Compare(v))

	_, err = Parse("1.2.3")
	require.ErrorIs(err, errMissingPrefix)

	_, err = Parse("v1.2")
	require.Error(err) //nolint:forbidigo // the error isn't exported

	for _, badVersion := range []string{
		"vz.0.0",
		"v0.z.0",
		"v0.0.z",
	} {
		_, err := Parse(badVersion)
		require.ErrorIs(err, strconv.ErrSyntax)
	}
}

func TestString(t *testing.T) {
	require := require.New(t)

	require.Equal("drawlots/"+Current.String()+" [go="+runtime.Version()+"]", format(""))
	require.Equal("drawlots/"+Current.String()+" [go="+runtime.Version()+", commit=abc]", format("abc"))
	require.Equal(format(GitCommit), String())
}
