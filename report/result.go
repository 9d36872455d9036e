// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package report

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is used to display draw times.
const TimeLayout = "2006-01-02 15:04:05"

// Result is the outcome of a single draw.
type Result struct {
	ID      uuid.UUID `json:"id"`
	Kind    Kind      `json:"kind"`
	Items   []string  `json:"items"`
	DrawnAt time.Time `json:"drawnAt"`
}

func NewResult(kind Kind, items []string, drawnAt time.Time) *Result {
	return &Result{
		ID:      uuid.New(),
		Kind:    kind,
		Items:   items,
		DrawnAt: drawnAt,
	}
}

func (r *Result) String() string {
	return strings.Join(r.Items, ", ")
}
