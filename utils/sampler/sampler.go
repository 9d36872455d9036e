// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
)

const (
	// Weights are kept in tenths so the heap only ever sees integers.
	weightScale = 10
	weightFloor = 1
)

var (
	ErrInvalidArgument = errors.New("invalid argument")

	errNegativeCount   = fmt.Errorf("%w: negative count", ErrInvalidArgument)
	errEmptyPopulation = fmt.Errorf("%w: empty population", ErrInvalidArgument)
)

type Config struct {
	// UseWeighted favours items that were selected less often by previous
	// draws of the same sampler.
	UseWeighted bool `json:"useWeighted"`
	// ShuffleBefore permutes the population before a uniform draw. It has
	// no effect on the distribution and is kept for parity with older
	// configuration files.
	ShuffleBefore bool `json:"shuffleBefore"`
	// Seed fixes the random source when non-zero.
	Seed int64 `json:"seed"`
}

// Sampler draws distinct items from a population and remembers how often
// every item has been selected. A Sampler is not safe for concurrent use.
type Sampler[T comparable] struct {
	config   Config
	uniform  *uniformReplacer
	weighted weightedWithoutReplacement

	totalDraws uint64
	history    map[T]uint64
	// order holds every selected item once, by time of first selection.
	order []T
}

// New returns a sampler backed by a Mersenne Twister source.
func New[T comparable](config Config) *Sampler[T] {
	return newSampler[T](config, newRNG(config.Seed))
}

// NewDeterministic returns a sampler that draws from [source]. config.Seed is
// ignored.
func NewDeterministic[T comparable](config Config, source Source) *Sampler[T] {
	return newSampler[T](config, &rng{rng: source})
}

func newSampler[T comparable](config Config, r *rng) *Sampler[T] {
	return &Sampler[T]{
		config:   config,
		uniform:  newUniform(r),
		weighted: weightedWithoutReplacement{rng: r},
		history:  make(map[T]uint64),
	}
}

func (s *Sampler[T]) Config() Config {
	return s.config
}

// Draw returns [count] items of [population] selected without replacement.
// Positions are drawn, so equal values appearing twice in [population] are
// separate candidates. If [count] is at least the population size, the whole
// population is returned in random order.
//
// The population is never modified. On error the history is left untouched.
func (s *Sampler[T]) Draw(population []T, count int) ([]T, error) {
	switch {
	case count < 0:
		return nil, fmt.Errorf("%w: %d", errNegativeCount, count)
	case len(population) == 0:
		return nil, errEmptyPopulation
	}

	var (
		positions []int
		err       error
	)
	switch {
	case count >= len(population):
		positions, err = s.drawUniform(len(population), len(population), false)
	case s.config.UseWeighted:
		positions, err = s.drawWeighted(population, count)
	default:
		positions, err = s.drawUniform(len(population), count, s.config.ShuffleBefore)
	}
	if err != nil {
		return nil, err
	}

	selected := make([]T, len(positions))
	for i, position := range positions {
		selected[i] = population[position]
	}
	s.record(selected)
	return selected, nil
}

func (s *Sampler[T]) drawUniform(size, count int, shuffle bool) ([]int, error) {
	s.uniform.Initialize(uint64(size))

	var order []uint64
	if shuffle {
		var err error
		order, err = s.uniform.Sample(size)
		if err != nil {
			return nil, err
		}
	}

	picks, err := s.uniform.Sample(count)
	if err != nil {
		return nil, err
	}

	positions := make([]int, count)
	for i, pick := range picks {
		if shuffle {
			pick = order[pick]
		}
		positions[i] = int(pick)
	}
	return positions, nil
}

func (s *Sampler[T]) drawWeighted(population []T, count int) ([]int, error) {
	weights := make([]uint64, len(population))
	for i, item := range population {
		weights[i] = weightUnits(s.history[item])
	}
	if err := s.weighted.Initialize(weights); err != nil {
		return nil, err
	}
	return s.weighted.Sample(count)
}

func (s *Sampler[T]) record(selected []T) {
	s.totalDraws++
	for _, item := range selected {
		if _, ok := s.history[item]; !ok {
			s.order = append(s.order, item)
		}
		s.history[item]++
	}
}

// Selections returns how many times [item] has been selected since the last
// reset.
func (s *Sampler[T]) Selections(item T) uint64 {
	return s.history[item]
}

func (s *Sampler[T]) Stats() Stats[T] {
	stats := Stats[T]{
		TotalDraws: s.totalDraws,
		Counts:     maps.Clone(s.history),
		Order:      make([]T, len(s.order)),
	}
	copy(stats.Order, s.order)

	for _, item := range s.order {
		count := s.history[item]
		if stats.MostSelected == nil || count > stats.MostSelected.Count {
			stats.MostSelected = &Selection[T]{Item: item, Count: count}
		}
		if stats.LeastSelected == nil || count < stats.LeastSelected.Count {
			stats.LeastSelected = &Selection[T]{Item: item, Count: count}
		}
	}
	return stats
}

// Reset forgets all selections. The configuration is kept.
func (s *Sampler[T]) Reset() {
	maps.Clear(s.history)
	s.order = s.order[:0]
	s.totalDraws = 0
}

// Weight returns the relative chance, in [0.1, 1], of an item that was
// selected [selections] times being picked by a weighted draw. The decay is a
// heuristic and makes no statistical guarantee.
func Weight(selections uint64) float64 {
	return float64(weightUnits(selections)) / weightScale
}

func weightUnits(selections uint64) uint64 {
	if selections >= weightScale-weightFloor {
		return weightFloor
	}
	return weightScale - selections
}
