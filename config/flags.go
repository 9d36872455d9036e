// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/drawlots/drawlots/session"
	"github.com/drawlots/drawlots/utils/constants"
	"github.com/drawlots/drawlots/utils/formatting"
)

const (
	defaultLogMaxSize  = 1
	defaultLogMaxFiles = 5
)

// BuildFlagSet returns the complete set of flags for drawlots
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	addFlags(fs)
	return fs
}

func addFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Values of the file are overridden by %s_* environment variables and flags", constants.EnvPrefix))

	// Sampling
	fs.Bool(UseWeightedSamplingKey, false, "Lower the chance of items that were selected before")
	fs.Bool(ShuffleBeforeSampleKey, false, "Shuffle the population before a uniform draw")
	fs.Int64(SeedKey, 0, "Seed of the random generator. 0 seeds from the clock")

	// Rosters
	fs.Bool(MergeNamesKey, true, "Merge duplicate names of a roster")
	fs.Bool(TrimSpacesKey, true, "Trim spaces around names")
	fs.Bool(UnicodeNormalizeKey, true, "Fold names to Unicode NFC before comparing them")
	fs.String(EncodingKey, formatting.Base64.String(), "Encoding of roster envelopes. Should be one of {base64, cb58}")
	fs.String(DataDirKey, session.DefaultDataDir, "Directory searched for the sample roster")
	fs.Bool(AutoLoadSampleKey, true, fmt.Sprintf("Load %s from the data directory on start", constants.SampleFileName))
	fs.Duration(RosterCacheTTLKey, session.DefaultRosterCacheTTL, "How long a loaded roster is reused. 0 keeps it until it is reloaded")

	// Results
	fs.Bool(SaveResultKey, false, "Write an HTML report of every draw")
	fs.String(ResultDirKey, session.DefaultResultDir, "Directory reports are written to")
	fs.Int(MaxHistoryItemsKey, session.DefaultMaxHistoryItems, "Number of draws kept in the history. 0 disables the history")
	fs.Int(GroupTotalDefaultKey, session.DefaultGroupTotal, "Number of groups used when none is given")
	fs.Int(GroupChoiceDefaultKey, session.DefaultGroupChoice, "Number of groups drawn when none is given")
	fs.Int(PersonChoiceDefaultKey, session.DefaultPersonChoice, "Number of persons drawn when none is given")

	fs.String(MetricsFileKey, "", "If set, metrics are written to this file in the Prometheus text format on exit")

	// Logging
	fs.String(LogsDirKey, "", "Logging directory. Defaults to the logs folder of the data directory")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, debug, info, warn, error, fatal, off}")
	fs.String(LogDisplayHighlightKey, "auto", "Whether to color/highlight display logs. Default highlights when the output is a terminal. Otherwise, should be one of {auto, plain, colors}")
	fs.Int(LogMaxSizeKey, defaultLogMaxSize, "Size, in megabytes, a log file may reach before it is rotated")
	fs.Int(LogMaxFilesKey, defaultLogMaxFiles, "Number of rotated log files to keep")
	fs.Bool(LogDisableFileKey, false, "Only write logs to the console")
}

// BuildViper returns the viper environment built from the already parsed
// [fs], the environment and the config file named by [ConfigFileKey].
// Flags take precedence over environment variables, which take precedence
// over the config file.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file: %w", err)
		}
	}
	return v, nil
}
