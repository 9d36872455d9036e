// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"math"
	"sort"
)

var errWeightsTooLarge = errors.New("total weight overflows uint64")

type weightedHeapElement struct {
	weight           uint64
	cumulativeWeight uint64
	index            int
}

// weightedHeap samples a weighted distribution using an implicit binary tree
// where every node carries the total weight of its subtree.
//
// Initialization takes O(n * log(n)) time, sampling and removal take
// O(log(n)) time.
type weightedHeap struct {
	heap []weightedHeapElement
}

func (s *weightedHeap) Initialize(weights []uint64) error {
	if len(weights) > cap(s.heap) {
		s.heap = make([]weightedHeapElement, len(weights))
	} else {
		s.heap = s.heap[:len(weights)]
	}
	for i, weight := range weights {
		s.heap[i] = weightedHeapElement{
			weight:           weight,
			cumulativeWeight: weight,
			index:            i,
		}
	}

	// Optimize so that the most probable values are at the top of the heap.
	// Ties keep their input order so a fixed source gives a fixed result.
	sort.SliceStable(s.heap, func(i, j int) bool {
		return s.heap[i].weight > s.heap[j].weight
	})

	// Initialize the heap
	for i := len(s.heap) - 1; i > 0; i-- {
		parentIndex := (i - 1) / 2
		parentWeight := s.heap[parentIndex].cumulativeWeight
		childWeight := s.heap[i].cumulativeWeight
		if parentWeight > math.MaxUint64-childWeight {
			return errWeightsTooLarge
		}
		s.heap[parentIndex].cumulativeWeight = parentWeight + childWeight
	}
	return nil
}

// TotalWeight is the weight that is still available to be sampled.
func (s *weightedHeap) TotalWeight() uint64 {
	if len(s.heap) == 0 {
		return 0
	}
	return s.heap[0].cumulativeWeight
}

// Sample returns the heap position that covers [value] in the cumulative
// distribution.
func (s *weightedHeap) Sample(value uint64) (int, error) {
	if s.TotalWeight() <= value {
		return 0, ErrOutOfRange
	}

	position := 0
	for {
		currentWeight := s.heap[position].weight
		if value < currentWeight {
			return position, nil
		}
		value -= currentWeight

		// We shouldn't return the root, so check the left child
		position = position*2 + 1

		if leftWeight := s.heap[position].cumulativeWeight; leftWeight <= value {
			// If the weight is greater than the left weight, you should move to
			// the right child
			value -= leftWeight
			position++
		}
	}
}

// Remove zeroes the weight at [position] so it can't be sampled again and
// returns the original index of the element.
func (s *weightedHeap) Remove(position int) int {
	element := &s.heap[position]
	weight := element.weight
	element.weight = 0
	for {
		s.heap[position].cumulativeWeight -= weight
		if position == 0 {
			break
		}
		position = (position - 1) / 2
	}
	return element.index
}
