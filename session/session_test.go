// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/drawlots/drawlots/report"
	"github.com/drawlots/drawlots/roster"
	"github.com/drawlots/drawlots/utils/constants"
	"github.com/drawlots/drawlots/utils/formatting"
	"github.com/drawlots/drawlots/utils/logging"
)

var drawnAt = time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

func newTestSession(t *testing.T, config Config) *Session {
	t.Helper()

	s, err := New(config, logging.NoLog{}, prometheus.NewRegistry())
	require.NoError(t, err)
	s.now = func() time.Time {
		return drawnAt
	}
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func testConfig(t *testing.T) Config {
	config := DefaultConfig()
	config.Sampler.Seed = 1
	config.DataDir = t.TempDir()
	config.ResultDir = filepath.Join(t.TempDir(), "results")
	return config
}

func writeRoster(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigVerify(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{
			name:   "default",
			modify: func(*Config) {},
			valid:  true,
		},
		{
			name: "history disabled",
			modify: func(c *Config) {
				c.MaxHistoryItems = 0
			},
			valid: true,
		},
		{
			name: "negative history",
			modify: func(c *Config) {
				c.MaxHistoryItems = -1
			},
		},
		{
			name: "no groups",
			modify: func(c *Config) {
				c.GroupTotalDefault = 0
			},
		},
		{
			name: "zero group choice",
			modify: func(c *Config) {
				c.GroupChoiceDefault = 0
			},
		},
		{
			name: "group choice above total",
			modify: func(c *Config) {
				c.GroupTotalDefault = 2
				c.GroupChoiceDefault = 3
			},
		},
		{
			name: "zero person choice",
			modify: func(c *Config) {
				c.PersonChoiceDefault = 0
			},
		},
		{
			name: "negative cache ttl",
			modify: func(c *Config) {
				c.RosterCacheTTL = -time.Second
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultConfig()
			test.modify(&config)
			err := config.Verify()
			if test.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.GroupTotalDefault = 0
	_, err := New(config, logging.NoLog{}, prometheus.NewRegistry())
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewDuplicateMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := New(DefaultConfig(), logging.NoLog{}, registry)
	require.NoError(t, err)
	_, err = New(DefaultConfig(), logging.NoLog{}, registry)
	var alreadyRegistered prometheus.AlreadyRegisteredError
	require.ErrorAs(t, err, &alreadyRegistered)
}

func TestDrawGroups(t *testing.T) {
	require := require.New(t)

	s := newTestSession(t, testConfig(t))
	for i := 0; i < 20; i++ {
		result, err := s.DrawGroups(9, 3)
		require.NoError(err)
		require.Equal(report.Group, result.Kind)
		require.Len(result.Items, 3)
		require.Equal(drawnAt, result.DrawnAt)

		numbers := make([]int, len(result.Items))
		for j, label := range result.Items {
			_, err := fmt.Sscanf(label, "第%d组", &numbers[j])
			require.NoError(err)
			require.GreaterOrEqual(numbers[j], 1)
			require.LessOrEqual(numbers[j], 9)
		}
		require.IsIncreasing(numbers)
	}

	stats, err := s.Stats(report.Group)
	require.NoError(err)
	require.Equal(uint64(20), stats.TotalDraws)

	var selections uint64
	for label, count := range stats.Counts {
		require.True(strings.HasPrefix(label, "第"))
		selections += count
	}
	require.Equal(uint64(60), selections)
	require.Equal(float64(20), testutil.ToFloat64(s.metrics.draws.WithLabelValues("group")))
	require.Equal(float64(60), testutil.ToFloat64(s.metrics.selectedItems.WithLabelValues("group")))
}

func TestDrawGroupsSaturates(t *testing.T) {
	require := require.New(t)

	s := newTestSession(t, testConfig(t))
	result, err := s.DrawGroups(3, 5)
	require.NoError(err)
	require.Equal([]string{"第1组", "第2组", "第3组"}, result.Items)

	entries := s.History()
	require.Len(entries, 1)
	require.Equal("09:26:53 - 抽取3组: 1, 2, 3", entries[0].String())
}

func TestDrawGroupsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		total int
		count int
	}{
		{
			name:  "no groups",
			total: 0,
			count: 1,
		},
		{
			name:  "negative total",
			total: -3,
			count: 1,
		},
		{
			name:  "zero count",
			total: 5,
			count: 0,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			s := newTestSession(t, testConfig(t))
			_, err := s.DrawGroups(test.total, test.count)
			require.ErrorIs(err, ErrInvalidArgument)

			stats, err := s.Stats(report.Group)
			require.NoError(err)
			require.Zero(stats.TotalDraws)
			require.Empty(s.History())
		})
	}
}

func TestDrawPersons(t *testing.T) {
	require := require.New(t)

	config := testConfig(t)
	s := newTestSession(t, config)

	_, err := s.DrawPersons(1)
	require.ErrorIs(err, ErrNoRoster)
	_, err = s.ReloadRoster()
	require.ErrorIs(err, ErrNoRoster)
	require.Nil(s.Roster())

	path := writeRoster(t, config.DataDir, "names.txt", "张三\n李四, 王五\n张三\n")
	r, err := s.LoadRoster(path)
	require.NoError(err)
	require.Equal([]string{"张三", "李四", "王五"}, r.Names)
	require.Equal(1, r.Duplicates)
	require.Equal(r, s.Roster())

	_, err = s.DrawPersons(0)
	require.ErrorIs(err, ErrInvalidArgument)

	result, err := s.DrawPersons(2)
	require.NoError(err)
	require.Equal(report.Person, result.Kind)
	require.Len(result.Items, 2)
	require.NotEqual(result.Items[0], result.Items[1])
	for _, name := range result.Items {
		require.Contains(r.Names, name)
	}

	result, err = s.DrawPersons(10)
	require.NoError(err)
	require.ElementsMatch(r.Names, result.Items)

	stats, err := s.Stats(report.Person)
	require.NoError(err)
	require.Equal(uint64(2), stats.TotalDraws)
	require.Len(stats.Counts, 3)
}

func TestPersonHistorySurvivesReload(t *testing.T) {
	require := require.New(t)

	config := testConfig(t)
	s := newTestSession(t, config)

	path := writeRoster(t, config.DataDir, "names.txt", "张三\n李四\n")
	_, err := s.LoadRoster(path)
	require.NoError(err)
	_, err = s.DrawPersons(2)
	require.NoError(err)

	_, err = s.ReloadRoster()
	require.NoError(err)

	stats, err := s.Stats(report.Person)
	require.NoError(err)
	require.Equal(uint64(1), stats.TotalDraws)
}

func TestLoadRosterCache(t *testing.T) {
	require := require.New(t)

	config := testConfig(t)
	s := newTestSession(t, config)

	path := writeRoster(t, config.DataDir, "names.txt", "a\nb\nc\n")
	first, err := s.LoadRoster(path)
	require.NoError(err)
	second, err := s.LoadRoster(path)
	require.NoError(err)
	require.Same(first, second)

	require.Equal(float64(1), testutil.ToFloat64(s.metrics.rosterLoads.WithLabelValues(sourceFile)))
	require.Equal(float64(1), testutil.ToFloat64(s.metrics.rosterLoads.WithLabelValues(sourceCache)))

	reloaded, err := s.ReloadRoster()
	require.NoError(err)
	require.NotSame(first, reloaded)
	require.Equal(first.Names, reloaded.Names)
	require.Equal(float64(2), testutil.ToFloat64(s.metrics.rosterLoads.WithLabelValues(sourceFile)))
}

func TestLoadRosterErrors(t *testing.T) {
	require := require.New(t)

	config := testConfig(t)
	s := newTestSession(t, config)

	_, err := s.LoadRoster(filepath.Join(config.DataDir, "missing.txt"))
	require.ErrorIs(err, os.ErrNotExist)

	path := writeRoster(t, config.DataDir, "blank.txt", " \n\n")
	_, err = s.LoadRoster(path)
	require.ErrorIs(err, roster.ErrEmptyRoster)
	require.Nil(s.Roster())
}

func TestAutoLoad(t *testing.T) {
	require := require.New(t)

	config := testConfig(t)
	s := newTestSession(t, config)

	loaded, err := s.AutoLoad()
	require.NoError(err)
	require.False(loaded)

	_, err = roster.WriteEnvelope(
		filepath.Join(config.DataDir, "sample"),
		[]string{"甲", "乙"},
		formatting.Base64,
		false,
	)
	require.NoError(err)

	loaded, err = s.AutoLoad()
	require.NoError(err)
	require.True(loaded)
	require.Equal([]string{"甲", "乙"}, s.Roster().Names)
	require.True(s.Roster().Envelope)
	require.Equal(filepath.Join(config.DataDir, constants.SampleFileName), filepath.Clean(s.Roster().Path))

	config.AutoLoadSample = false
	disabled := newTestSession(t, config)
	loaded, err = disabled.AutoLoad()
	require.NoError(err)
	require.False(loaded)
	require.Nil(disabled.Roster())
}

func TestHistory(t *testing.T) {
	require := require.New(t)

	config := testConfig(t)
	config.MaxHistoryItems = 2
	s := newTestSession(t, config)

	for total := 1; total <= 3; total++ {
		_, err := s.DrawGroups(total, total)
		require.NoError(err)
	}

	entries := s.History()
	require.Len(entries, 2)
	require.Equal(3, entries[0].Count)
	require.Equal(2, entries[1].Count)

	// Callers get a copy.
	entries[0].Count = 100
	require.Equal(3, s.History()[0].Count)

	s.ClearHistory()
	require.Empty(s.History())
}

func TestHistoryDisabled(t *testing.T) {
	config := testConfig(t)
	config.MaxHistoryItems = 0
	s := newTestSession(t, config)

	_, err := s.DrawGroups(3, 1)
	require.NoError(t, err)
	require.Empty(t, s.History())
}

func TestEntryString(t *testing.T) {
	names := make([]string, 12)
	for i := range names {
		names[i] = string(rune('a' + i))
	}

	tests := []struct {
		name     string
		entry    Entry
		expected string
	}{
		{
			name: "groups",
			entry: Entry{
				Time:  drawnAt,
				Kind:  report.Group,
				Count: 3,
				Items: []string{"1", "4", "7"},
			},
			expected: "09:26:53 - 抽取3组: 1, 4, 7",
		},
		{
			name: "persons",
			entry: Entry{
				Time:  drawnAt,
				Kind:  report.Person,
				Count: 2,
				Items: []string{"张三", "李四"},
			},
			expected: "09:26:53 - 抽取2人: 张三, 李四",
		},
		{
			name: "persons truncated",
			entry: Entry{
				Time:  drawnAt,
				Kind:  report.Person,
				Count: 12,
				Items: names,
			},
			expected: "09:26:53 - 抽取12人: a, b, c, d, e, f, g, h, i, j...",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.entry.String())
		})
	}
}

func TestReset(t *testing.T) {
	require := require.New(t)

	config := testConfig(t)
	s := newTestSession(t, config)

	path := writeRoster(t, config.DataDir, "names.txt", "a\nb\n")
	_, err := s.LoadRoster(path)
	require.NoError(err)
	_, err = s.DrawGroups(4, 2)
	require.NoError(err)
	_, err = s.DrawPersons(1)
	require.NoError(err)

	require.NoError(s.Reset(report.Group))
	groups, err := s.Stats(report.Group)
	require.NoError(err)
	require.Zero(groups.TotalDraws)
	require.Nil(groups.MostSelected)

	persons, err := s.Stats(report.Person)
	require.NoError(err)
	require.Equal(uint64(1), persons.TotalDraws)

	s.ResetAll()
	persons, err = s.Stats(report.Person)
	require.NoError(err)
	require.Zero(persons.TotalDraws)

	// The history of draws isn't part of the selection history.
	require.Len(s.History(), 2)

	require.ErrorIs(s.Reset(report.Kind(99)), ErrInvalidArgument)
	_, err = s.Stats(report.Kind(99))
	require.ErrorIs(err, ErrInvalidArgument)
}

func TestStatsRelabelsGroups(t *testing.T) {
	require := require.New(t)

	s := newTestSession(t, testConfig(t))
	_, err := s.DrawGroups(2, 2)
	require.NoError(err)
	_, err = s.DrawGroups(2, 2)
	require.NoError(err)

	stats, err := s.Stats(report.Group)
	require.NoError(err)
	require.Equal(map[string]uint64{
		"第1组": 2,
		"第2组": 2,
	}, stats.Counts)
	require.ElementsMatch([]string{"第1组", "第2组"}, stats.Order)
	require.NotNil(stats.MostSelected)
	require.Equal(uint64(2), stats.MostSelected.Count)
	require.Equal(stats.Order[0], stats.MostSelected.Item)
	require.Equal(stats.Order[0], stats.LeastSelected.Item)
}

func TestSaveResult(t *testing.T) {
	require := require.New(t)

	config := testConfig(t)
	config.SaveResult = true
	s := newTestSession(t, config)

	_, err := s.DrawGroups(3, 2)
	require.NoError(err)
	_, err = s.DrawGroups(3, 2)
	require.NoError(err)

	files, err := os.ReadDir(config.ResultDir)
	require.NoError(err)
	require.Len(files, 2)
	for _, file := range files {
		require.True(strings.HasPrefix(file.Name(), report.Group.Label()))
		require.Equal(".html", filepath.Ext(file.Name()))
	}
}

func TestSaveResultDisabled(t *testing.T) {
	config := testConfig(t)
	s := newTestSession(t, config)

	_, err := s.DrawGroups(3, 2)
	require.NoError(t, err)

	_, err = os.Stat(config.ResultDir)
	require.ErrorIs(t, err, os.ErrNotExist)
}
