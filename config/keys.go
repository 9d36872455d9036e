// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

// Keys shared by the command line, the environment and config files
const (
	ConfigFileKey = "config-file"

	// Sampling
	UseWeightedSamplingKey = "use-weighted-sampling"
	ShuffleBeforeSampleKey = "shuffle-before-sample"
	SeedKey                = "seed"

	// Rosters
	MergeNamesKey       = "merge-names"
	TrimSpacesKey       = "trim-spaces"
	UnicodeNormalizeKey = "unicode-normalize"
	EncodingKey         = "encoding"
	DataDirKey          = "data-dir"
	AutoLoadSampleKey   = "auto-load-sample"
	RosterCacheTTLKey   = "roster-cache-ttl"

	// Results
	SaveResultKey          = "save-result"
	ResultDirKey           = "result-dir"
	MaxHistoryItemsKey     = "max-history-items"
	GroupTotalDefaultKey   = "group-total-default"
	GroupChoiceDefaultKey  = "group-choice-default"
	PersonChoiceDefaultKey = "person-choice-default"

	MetricsFileKey = "metrics-file"

	// Logging
	LogsDirKey             = "log-dir"
	LogLevelKey            = "log-level"
	LogDisplayLevelKey     = "log-display-level"
	LogDisplayHighlightKey = "log-display-highlight"
	LogMaxSizeKey          = "log-max-size"
	LogMaxFilesKey         = "log-max-files"
	LogDisableFileKey      = "log-disable-file"
)
