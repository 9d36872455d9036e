// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package roster

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// delimiters in priority order. Only the first one present in a line is used
// to split it.
var delimiters = []string{",", ";", "\t"}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

type Options struct {
	// Trim strips surrounding whitespace from every name.
	Trim bool `json:"trim" yaml:"trim"`
	// Dedupe keeps only the first occurrence of every name.
	Dedupe bool `json:"dedupe" yaml:"dedupe"`
	// UnicodeNormalize folds names to NFC so that visually equal names
	// compare equal.
	UnicodeNormalize bool `json:"unicodeNormalize" yaml:"unicodeNormalize"`
}

func DefaultOptions() Options {
	return Options{
		Trim:             true,
		Dedupe:           true,
		UnicodeNormalize: true,
	}
}

// List is the result of normalizing a block of text.
type List struct {
	Names []string `json:"names"`
	// Duplicates is the number of names removed by deduplication.
	Duplicates int `json:"duplicates"`
	// Dropped is the number of empty tokens that were discarded.
	Dropped int `json:"dropped"`
}

func (l List) HasDuplicates() bool {
	return l.Duplicates > 0
}

// Normalize splits [text] into names. Every line holds either a single name or
// names separated by the first delimiter, out of ',' ';' and '\t', that
// appears in it. Blank lines are skipped. Names keep the order of their first
// appearance.
func Normalize(text string, opts Options) List {
	var (
		list List
		seen map[string]struct{}
	)
	if opts.Dedupe {
		seen = make(map[string]struct{})
	}

	for _, line := range strings.Split(lineEndings.Replace(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		for _, name := range splitLine(line) {
			if opts.Trim {
				name = strings.TrimSpace(name)
			}
			if opts.UnicodeNormalize {
				name = norm.NFC.String(name)
			}
			if name == "" {
				list.Dropped++
				continue
			}

			if opts.Dedupe {
				if _, ok := seen[name]; ok {
					list.Duplicates++
					continue
				}
				seen[name] = struct{}{}
			}
			list.Names = append(list.Names, name)
		}
	}
	return list
}

func splitLine(line string) []string {
	for _, delimiter := range delimiters {
		if strings.Contains(line, delimiter) {
			return strings.Split(line, delimiter)
		}
	}
	return []string{strings.TrimSpace(line)}
}
