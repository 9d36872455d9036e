// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/drawlots/drawlots/report"
)

const (
	historyTimeLayout = "15:04:05"
	// Person entries only show this many names.
	maxHistoryNames = 10
)

// Entry is a line of the draw history.
type Entry struct {
	Time  time.Time   `json:"time"`
	Kind  report.Kind `json:"kind"`
	Count int         `json:"count"`
	// Items are group numbers or person names.
	Items []string `json:"items"`
}

// String formats the entry as "HH:MM:SS - 抽取N组: 1, 4, 7".
func (e Entry) String() string {
	items := e.Items
	suffix := ""
	if e.Kind == report.Person && len(items) > maxHistoryNames {
		items = items[:maxHistoryNames]
		suffix = "..."
	}
	return fmt.Sprintf(
		"%s - 抽取%d%s: %s%s",
		e.Time.Format(historyTimeLayout),
		e.Count,
		e.Kind.Noun(),
		strings.Join(items, ", "),
		suffix,
	)
}

// history keeps the newest entries first.
type history struct {
	max     int
	entries []Entry
}

func (h *history) add(e Entry) {
	if h.max == 0 {
		return
	}
	if len(h.entries) < h.max {
		h.entries = append(h.entries, Entry{})
	}
	copy(h.entries[1:], h.entries)
	h.entries[0] = e
}

func (h *history) list() []Entry {
	entries := make([]Entry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

func (h *history) clear() {
	h.entries = nil
}
