// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drawlots/drawlots/report"
	"github.com/drawlots/drawlots/utils/sampler"
)

func runShell(t *testing.T, s *Session, input string) string {
	t.Helper()

	var out bytes.Buffer
	shell := NewShell(s, strings.NewReader(input), &out)
	require.NoError(t, shell.Run(context.Background()))
	return out.String()
}

func TestShellTranscript(t *testing.T) {
	require := require.New(t)

	config := testConfig(t)
	s := newTestSession(t, config)
	path := writeRoster(t, config.DataDir, "names.txt", "张三\n张三\n")

	input := strings.Join([]string{
		"group 2 2",
		"",
		"person",
		"load " + path,
		"PERSON 1",
		"history",
		"bogus",
		"quit",
		"group 3 3",
	}, "\n")
	out := runShell(t, s, input)

	expected := strings.Join([]string{
		"> 抽取2组:",
		"  第1组",
		"  第2组",
		"> > error: no roster loaded",
		"> loaded 1 names from " + path,
		"warning: 1 duplicate names were merged",
		"> 抽取1人:",
		"  张三",
		"> 09:26:53 - 抽取1人: 张三",
		"09:26:53 - 抽取2组: 1, 2",
		`> error: unknown command "bogus", type help for a list`,
		"> ",
	}, "\n")
	require.Equal(expected, out)
	require.Len(s.History(), 2)
}

func TestShellDefaults(t *testing.T) {
	require := require.New(t)

	config := testConfig(t)
	config.GroupTotalDefault = 4
	config.GroupChoiceDefault = 4
	s := newTestSession(t, config)

	out := runShell(t, s, "group\ngroup 2\n")
	require.Equal("> 抽取4组:\n  第1组\n  第2组\n  第3组\n  第4组\n> 抽取2组:\n  第1组\n  第2组\n> \n", out)
}

func TestShellErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "group a",
			expected: `error: invalid argument: "a" is not a number`,
		},
		{
			input:    "group 1 2 3",
			expected: "error: invalid argument: expected at most 2 arguments",
		},
		{
			input:    "group 0 1",
			expected: "error: invalid argument: total (0) < 1",
		},
		{
			input:    "load",
			expected: "error: invalid argument: load expects a file",
		},
		{
			input:    "reload",
			expected: "error: no roster loaded",
		},
		{
			input:    "stats nobody",
			expected: "error: invalid argument",
		},
		{
			input:    "reset group person",
			expected: "error: invalid argument: expected at most 1 argument",
		},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			s := newTestSession(t, testConfig(t))
			out := runShell(t, s, test.input+"\n")
			require.Contains(t, out, test.expected)
		})
	}
}

func TestShellStatsAndReset(t *testing.T) {
	require := require.New(t)

	s := newTestSession(t, testConfig(t))
	out := runShell(t, s, "group 1 1\nstats group\nreset\nstats\nhistory\nclear\nhistory\n")

	require.Contains(out, "group draws: 1\n  most selected: 第1组 (1)\n  least selected: 第1组 (1)\n  第1组: 1\n")
	require.Contains(out, "group history reset\nperson history reset\n")
	require.Contains(out, "group draws: 0\n  nothing selected yet\nperson draws: 0\n  nothing selected yet\n")
	require.Contains(out, "> 09:26:53 - 抽取1组: 1\n")
	require.Contains(out, "history cleared\n> no draws yet\n")
}

func TestShellHelp(t *testing.T) {
	s := newTestSession(t, testConfig(t))
	out := runShell(t, s, "help\nexit\n")
	require.Equal(t, "> "+shellHelp+"> ", out)
}

func TestShellCanceled(t *testing.T) {
	s := newTestSession(t, testConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewShell(s, strings.NewReader("group\n"), &out).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

func TestPrintStats(t *testing.T) {
	var out bytes.Buffer
	PrintStats(&out, report.Person, sampler.Stats[string]{
		TotalDraws: 3,
		Counts: map[string]uint64{
			"张三": 2,
			"李四": 1,
		},
		Order: []string{"李四", "张三"},
		MostSelected: &sampler.Selection[string]{
			Item:  "张三",
			Count: 2,
		},
		LeastSelected: &sampler.Selection[string]{
			Item:  "李四",
			Count: 1,
		},
	})
	require.Equal(t, fmt.Sprint(
		"person draws: 3\n",
		"  most selected: 张三 (2)\n",
		"  least selected: 李四 (1)\n",
		"  李四: 1\n",
		"  张三: 2\n",
	), out.String())
}
