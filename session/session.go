// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/drawlots/drawlots/report"
	"github.com/drawlots/drawlots/roster"
	"github.com/drawlots/drawlots/utils/constants"
	"github.com/drawlots/drawlots/utils/logging"
	"github.com/drawlots/drawlots/utils/sampler"
	"github.com/drawlots/drawlots/utils/storage"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoRoster        = errors.New("no roster loaded")
)

// Session owns a sampler for groups and one for persons, so selections of one
// never weigh on the other. A Session is not safe for concurrent use.
type Session struct {
	config  Config
	log     logging.Logger
	metrics *metrics

	groups  *sampler.Sampler[int]
	persons *sampler.Sampler[string]

	cache  *roster.Cache
	roster *roster.Roster

	history history
	writer  *report.Writer

	now func() time.Time
}

func New(config Config, log logging.Logger, registerer prometheus.Registerer) (*Session, error) {
	if err := config.Verify(); err != nil {
		return nil, err
	}

	m, err := newMetrics(constants.AppName, registerer)
	if err != nil {
		return nil, fmt.Errorf("couldn't register metrics: %w", err)
	}

	personsConfig := config.Sampler
	if personsConfig.Seed != 0 {
		// keep the two streams apart when the session is seeded
		personsConfig.Seed++
	}
	return &Session{
		config:  config,
		log:     log,
		metrics: m,
		groups:  sampler.New[int](config.Sampler),
		persons: sampler.New[string](personsConfig),
		cache:   roster.NewCache(config.RosterCacheTTL),
		history: history{max: config.MaxHistoryItems},
		writer:  report.NewWriter(config.ResultDir),
		now:     time.Now,
	}, nil
}

func (s *Session) Config() Config {
	return s.config
}

// DrawGroups draws [count] of the groups numbered 1 to [total]. The result is
// sorted by group number.
func (s *Session) DrawGroups(total, count int) (*report.Result, error) {
	if err := verifyDraw(total, count); err != nil {
		return nil, err
	}
	if count >= total {
		s.log.Warn("drawing every group",
			zap.Int("total", total),
			zap.Int("count", count),
		)
	}

	population := make([]int, total)
	for i := range population {
		population[i] = i + 1
	}
	selected, err := s.groups.Draw(population, count)
	if err != nil {
		return nil, err
	}
	slices.Sort(selected)

	labels := make([]string, len(selected))
	numbers := make([]string, len(selected))
	for i, group := range selected {
		labels[i] = report.GroupLabel(group)
		numbers[i] = strconv.Itoa(group)
	}

	result := report.NewResult(report.Group, labels, s.now())
	s.record(result, numbers)
	return result, nil
}

// LoadRoster makes the roster at [path] the population of person draws. The
// person selection history is kept.
func (s *Session) LoadRoster(path string) (*roster.Roster, error) {
	start := time.Now()
	r, cached, err := s.cache.Load(path, s.config.Roster)
	if err != nil {
		s.log.Warn("couldn't load roster",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}

	source := sourceFile
	if cached {
		source = sourceCache
	}
	s.metrics.rosterLoads.WithLabelValues(source).Inc()
	s.metrics.rosterLoadDuration.WithLabelValues(source).Observe(float64(time.Since(start)) / float64(time.Millisecond))

	if r.HasDuplicates() {
		s.log.Warn("roster contains duplicate names",
			zap.String("path", r.Path),
			zap.Int("duplicates", r.Duplicates),
		)
	}
	s.log.Info("loaded roster",
		zap.String("path", r.Path),
		zap.Int("names", len(r.Names)),
		zap.String("charset", string(r.Charset)),
		zap.Bool("envelope", r.Envelope),
		zap.Bool("cached", cached),
	)
	s.roster = r
	return r, nil
}

// ReloadRoster reads the current roster file again, skipping the cache.
func (s *Session) ReloadRoster() (*roster.Roster, error) {
	if s.roster == nil {
		return nil, ErrNoRoster
	}
	s.cache.Invalidate(s.roster.Path)
	return s.LoadRoster(s.roster.Path)
}

// Roster returns the loaded roster, or nil.
func (s *Session) Roster() *roster.Roster {
	return s.roster
}

// AutoLoad loads the sample roster from the data directory if auto loading is
// enabled and the file exists. It reports whether a roster was loaded.
func (s *Session) AutoLoad() (bool, error) {
	if !s.config.AutoLoadSample {
		return false, nil
	}

	path := filepath.Join(s.config.DataDir, constants.SampleFileName)
	exists, err := storage.FileExists(path)
	if err != nil || !exists {
		return false, err
	}
	if _, err := s.LoadRoster(path); err != nil {
		return false, err
	}
	return true, nil
}

// DrawPersons draws [count] names of the loaded roster.
func (s *Session) DrawPersons(count int) (*report.Result, error) {
	if s.roster == nil {
		return nil, ErrNoRoster
	}
	if err := verifyDraw(len(s.roster.Names), count); err != nil {
		return nil, err
	}
	if count >= len(s.roster.Names) {
		s.log.Warn("drawing every person",
			zap.Int("total", len(s.roster.Names)),
			zap.Int("count", count),
		)
	}

	selected, err := s.persons.Draw(s.roster.Names, count)
	if err != nil {
		return nil, err
	}

	result := report.NewResult(report.Person, selected, s.now())
	s.record(result, selected)
	return result, nil
}

func (s *Session) record(result *report.Result, items []string) {
	kind := result.Kind.String()
	s.metrics.draws.WithLabelValues(kind).Inc()
	s.metrics.selectedItems.WithLabelValues(kind).Add(float64(len(result.Items)))

	s.history.add(Entry{
		Time:  result.DrawnAt,
		Kind:  result.Kind,
		Count: len(result.Items),
		Items: items,
	})

	s.log.Info("drew "+kind+"s",
		zap.Stringer("id", result.ID),
		zap.Strings("items", result.Items),
	)

	if !s.config.SaveResult {
		return
	}
	path, err := s.writer.Save(result)
	if err != nil {
		s.log.Warn("couldn't save result",
			zap.Stringer("id", result.ID),
			zap.Error(err),
		)
		return
	}
	s.log.Info("saved result",
		zap.Stringer("id", result.ID),
		zap.String("path", path),
	)
}

// Stats returns the selection history of [kind]. Groups are named by their
// label.
func (s *Session) Stats(kind report.Kind) (sampler.Stats[string], error) {
	switch kind {
	case report.Group:
		return relabel(s.groups.Stats(), report.GroupLabel), nil
	case report.Person:
		return s.persons.Stats(), nil
	default:
		return sampler.Stats[string]{}, fmt.Errorf("%w: kind %s", ErrInvalidArgument, kind)
	}
}

// Reset forgets the selection history of [kind].
func (s *Session) Reset(kind report.Kind) error {
	switch kind {
	case report.Group:
		s.groups.Reset()
	case report.Person:
		s.persons.Reset()
	default:
		return fmt.Errorf("%w: kind %s", ErrInvalidArgument, kind)
	}
	s.log.Info("reset selection history",
		zap.Stringer("kind", kind),
	)
	return nil
}

func (s *Session) ResetAll() {
	for _, kind := range report.Kinds {
		_ = s.Reset(kind)
	}
}

// History returns the most recent draws, newest first.
func (s *Session) History() []Entry {
	return s.history.list()
}

func (s *Session) ClearHistory() {
	s.history.clear()
}

// Close drops cached rosters.
func (s *Session) Close() error {
	s.cache.Flush()
	return nil
}

func verifyDraw(total, count int) error {
	switch {
	case total < 1:
		return fmt.Errorf("%w: total (%d) < 1", ErrInvalidArgument, total)
	case count < 1:
		return fmt.Errorf("%w: count (%d) < 1", ErrInvalidArgument, count)
	default:
		return nil
	}
}

func relabel[T comparable](stats sampler.Stats[T], name func(T) string) sampler.Stats[string] {
	relabeled := sampler.Stats[string]{
		TotalDraws: stats.TotalDraws,
		Counts:     make(map[string]uint64, len(stats.Counts)),
		Order:      make([]string, len(stats.Order)),
	}
	for item, count := range stats.Counts {
		relabeled.Counts[name(item)] = count
	}
	for i, item := range stats.Order {
		relabeled.Order[i] = name(item)
	}
	if stats.MostSelected != nil {
		relabeled.MostSelected = &sampler.Selection[string]{
			Item:  name(stats.MostSelected.Item),
			Count: stats.MostSelected.Count,
		}
	}
	if stats.LeastSelected != nil {
		relabeled.LeastSelected = &sampler.Selection[string]{
			Item:  name(stats.LeastSelected.Item),
			Count: stats.LeastSelected.Count,
		}
	}
	return relabeled
}
