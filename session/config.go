// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"fmt"
	"time"

	"github.com/drawlots/drawlots/roster"
	"github.com/drawlots/drawlots/utils/sampler"
)

const (
	DefaultMaxHistoryItems = 10
	DefaultGroupTotal      = 9
	DefaultGroupChoice     = 3
	DefaultPersonChoice    = 1
	DefaultRosterCacheTTL  = 10 * time.Minute
	DefaultResultDir       = "results"
	DefaultDataDir         = "."
)

// Config holds everything a session needs. It is built once by the config
// package and never read from a global.
type Config struct {
	Sampler sampler.Config     `json:"sampler" yaml:"sampler"`
	Roster  roster.LoadOptions `json:"roster" yaml:"roster"`

	// SaveResult writes an HTML report of every draw to ResultDir.
	SaveResult bool   `json:"saveResult" yaml:"saveResult"`
	ResultDir  string `json:"resultDir" yaml:"resultDir"`

	// DataDir is searched for the sample roster on start up.
	DataDir        string `json:"dataDir" yaml:"dataDir"`
	AutoLoadSample bool   `json:"autoLoadSample" yaml:"autoLoadSample"`

	// MaxHistoryItems bounds the history. Zero disables it.
	MaxHistoryItems int `json:"maxHistoryItems" yaml:"maxHistoryItems"`

	GroupTotalDefault   int `json:"groupTotalDefault" yaml:"groupTotalDefault"`
	GroupChoiceDefault  int `json:"groupChoiceDefault" yaml:"groupChoiceDefault"`
	PersonChoiceDefault int `json:"personChoiceDefault" yaml:"personChoiceDefault"`

	// RosterCacheTTL is how long a loaded roster is reused. Zero keeps
	// rosters until they are reloaded.
	RosterCacheTTL time.Duration `json:"rosterCacheTTL" yaml:"rosterCacheTTL"`
}

func DefaultConfig() Config {
	return Config{
		Roster:              roster.DefaultLoadOptions(),
		ResultDir:           DefaultResultDir,
		DataDir:             DefaultDataDir,
		AutoLoadSample:      true,
		MaxHistoryItems:     DefaultMaxHistoryItems,
		GroupTotalDefault:   DefaultGroupTotal,
		GroupChoiceDefault:  DefaultGroupChoice,
		PersonChoiceDefault: DefaultPersonChoice,
		RosterCacheTTL:      DefaultRosterCacheTTL,
	}
}

// Verify returns an error wrapping [ErrInvalidArgument] if a value can't be
// used.
func (c *Config) Verify() error {
	switch {
	case c.MaxHistoryItems < 0:
		return fmt.Errorf("%w: max history items (%d) < 0", ErrInvalidArgument, c.MaxHistoryItems)
	case c.GroupTotalDefault < 1:
		return fmt.Errorf("%w: group total default (%d) < 1", ErrInvalidArgument, c.GroupTotalDefault)
	case c.GroupChoiceDefault < 1:
		return fmt.Errorf("%w: group choice default (%d) < 1", ErrInvalidArgument, c.GroupChoiceDefault)
	case c.GroupChoiceDefault > c.GroupTotalDefault:
		return fmt.Errorf("%w: group choice default (%d) > group total default (%d)", ErrInvalidArgument, c.GroupChoiceDefault, c.GroupTotalDefault)
	case c.PersonChoiceDefault < 1:
		return fmt.Errorf("%w: person choice default (%d) < 1", ErrInvalidArgument, c.PersonChoiceDefault)
	case c.RosterCacheTTL < 0:
		return fmt.Errorf("%w: roster cache ttl (%s) < 0", ErrInvalidArgument, c.RosterCacheTTL)
	default:
		return nil
	}
}
