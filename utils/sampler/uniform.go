// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"

	"golang.org/x/exp/maps"
)

var ErrOutOfRange = errors.New("out of range")

// uniformReplacer allows for sampling over a uniform distribution without
// replacement.
//
// Sampling is performed by lazily performing a Fisher–Yates shuffle: a drawn
// position is swapped with the first undrawn one, and only the swaps are
// remembered.
//
// Initialization takes O(1) time.
//
// Sampling is performed in O(count) time and O(count) space.
type uniformReplacer struct {
	rng        *rng
	length     uint64
	drawn      map[uint64]uint64
	drawsCount uint64
}

func newUniform(r *rng) *uniformReplacer {
	return &uniformReplacer{
		rng:   r,
		drawn: make(map[uint64]uint64),
	}
}

func (s *uniformReplacer) Initialize(length uint64) {
	s.length = length
	s.Reset()
}

// Sample returns [count] distinct positions in [0, length) in draw order.
func (s *uniformReplacer) Sample(count int) ([]uint64, error) {
	s.Reset()

	results := make([]uint64, count)
	for i := 0; i < count; i++ {
		ret, err := s.Next()
		if err != nil {
			return nil, err
		}
		results[i] = ret
	}
	return results, nil
}

func (s *uniformReplacer) Reset() {
	maps.Clear(s.drawn)
	s.drawsCount = 0
}

func (s *uniformReplacer) Next() (uint64, error) {
	if s.drawsCount >= s.length {
		return 0, ErrOutOfRange
	}

	draw := s.rng.Uint64Inclusive(s.length-1-s.drawsCount) + s.drawsCount
	ret := getDefault(s.drawn, draw, draw)
	s.drawn[draw] = getDefault(s.drawn, s.drawsCount, s.drawsCount)
	s.drawsCount++
	return ret, nil
}

func getDefault(m map[uint64]uint64, key, def uint64) uint64 {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}
