// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

type Selection[T comparable] struct {
	Item  T      `json:"item"`
	Count uint64 `json:"count"`
}

// Stats is a snapshot of a sampler's history. It is not updated by later
// draws.
type Stats[T comparable] struct {
	TotalDraws uint64       `json:"totalDraws"`
	Counts     map[T]uint64 `json:"counts"`
	// Order lists the keys of Counts by time of first selection.
	Order []T `json:"order"`
	// MostSelected and LeastSelected are nil until something was selected.
	// Ties go to the item that was selected first.
	MostSelected  *Selection[T] `json:"mostSelected,omitempty"`
	LeastSelected *Selection[T] `json:"leastSelected,omitempty"`
}
