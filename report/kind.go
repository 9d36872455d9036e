// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package report

import (
	"errors"
	"fmt"
	"strings"
)

var errUnknownKind = errors.New("unknown result kind")

// Kind is the population a result was drawn from.
type Kind uint8

const (
	// Group results are drawn from the numbered groups 1..N
	Group Kind = iota
	// Person results are drawn from a loaded roster
	Person
)

// Kinds lists every valid Kind.
var Kinds = []Kind{Group, Person}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "group", "groups":
		return Group, nil
	case "person", "persons":
		return Person, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownKind, s)
	}
}

func (k Kind) String() string {
	switch k {
	case Group:
		return "group"
	case Person:
		return "person"
	default:
		return "unknown"
	}
}

// Label is the title used for reports and their file names.
func (k Kind) Label() string {
	switch k {
	case Group:
		return "随机抽组"
	case Person:
		return "随机抽人"
	default:
		return "抽取结果"
	}
}

// Noun is the measure word used when counting results of this kind.
func (k Kind) Noun() string {
	switch k {
	case Group:
		return "组"
	case Person:
		return "人"
	default:
		return "项"
	}
}

func (k Kind) Valid() bool {
	return k == Group || k == Person
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", errUnknownKind, k)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// GroupLabel names the [n]th group.
func GroupLabel(n int) string {
	return fmt.Sprintf("第%d组", n)
}
