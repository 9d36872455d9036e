// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// weightedWithoutReplacement samples indices without replacement, where each
// pick is proportional to the remaining weight. Once an index is picked its
// weight is removed from the tree, so the cost of a sample of [count] indices
// is O(count * log(n)).
type weightedWithoutReplacement struct {
	rng  *rng
	heap weightedHeap
}

func (s *weightedWithoutReplacement) Initialize(weights []uint64) error {
	return s.heap.Initialize(weights)
}

// Sample consumes the weights provided to Initialize. Sampling again requires
// another call to Initialize.
func (s *weightedWithoutReplacement) Sample(count int) ([]int, error) {
	indices := make([]int, count)
	for i := range indices {
		totalWeight := s.heap.TotalWeight()
		if totalWeight == 0 {
			return nil, ErrOutOfRange
		}

		position, err := s.heap.Sample(s.rng.Uint64Inclusive(totalWeight - 1))
		if err != nil {
			return nil, err
		}
		indices[i] = s.heap.Remove(position)
	}
	return indices, nil
}
