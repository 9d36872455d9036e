// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/drawlots/drawlots/roster"
	"github.com/drawlots/drawlots/session"
	"github.com/drawlots/drawlots/utils/formatting"
	"github.com/drawlots/drawlots/utils/logging"
	"github.com/drawlots/drawlots/utils/perms"
	"github.com/drawlots/drawlots/utils/sampler"
	"github.com/drawlots/drawlots/utils/storage"
)

const logsDirName = "logs"

var (
	errInvalidLogSize = errors.New("log rotation values must be positive")
	errFileExists     = errors.New("file already exists")
)

// Config is everything drawlots needs to run.
type Config struct {
	Session     session.Config `json:"session"`
	Logging     logging.Config `json:"logging"`
	MetricsFile string         `json:"metricsFile"`
}

// GetConfig reads the configuration out of [v] and verifies it.
func GetConfig(v *viper.Viper) (Config, error) {
	encoding, err := formatting.ParseEncoding(v.GetString(EncodingKey))
	if err != nil {
		return Config{}, err
	}

	sessionConfig := session.Config{
		Sampler: sampler.Config{
			UseWeighted:   v.GetBool(UseWeightedSamplingKey),
			ShuffleBefore: v.GetBool(ShuffleBeforeSampleKey),
			Seed:          v.GetInt64(SeedKey),
		},
		Roster: roster.LoadOptions{
			Options: roster.Options{
				Trim:             v.GetBool(TrimSpacesKey),
				Dedupe:           v.GetBool(MergeNamesKey),
				UnicodeNormalize: v.GetBool(UnicodeNormalizeKey),
			},
			Encoding: encoding,
		},
		SaveResult:          v.GetBool(SaveResultKey),
		ResultDir:           os.ExpandEnv(v.GetString(ResultDirKey)),
		DataDir:             os.ExpandEnv(v.GetString(DataDirKey)),
		AutoLoadSample:      v.GetBool(AutoLoadSampleKey),
		MaxHistoryItems:     v.GetInt(MaxHistoryItemsKey),
		GroupTotalDefault:   v.GetInt(GroupTotalDefaultKey),
		GroupChoiceDefault:  v.GetInt(GroupChoiceDefaultKey),
		PersonChoiceDefault: v.GetInt(PersonChoiceDefaultKey),
		RosterCacheTTL:      v.GetDuration(RosterCacheTTLKey),
	}
	if err := sessionConfig.Verify(); err != nil {
		return Config{}, err
	}

	loggingConfig, err := getLoggingConfig(v, sessionConfig.DataDir)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Session:     sessionConfig,
		Logging:     loggingConfig,
		MetricsFile: os.ExpandEnv(v.GetString(MetricsFileKey)),
	}, nil
}

func getLoggingConfig(v *viper.Viper, dataDir string) (logging.Config, error) {
	logsDir := v.GetString(LogsDirKey)
	if logsDir == "" {
		logsDir = filepath.Join(dataDir, logsDirName)
	}
	config := logging.DefaultConfig(os.ExpandEnv(logsDir))

	var err error
	config.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return logging.Config{}, err
	}

	config.DisplayLevel = config.LogLevel
	if displayLevel := v.GetString(LogDisplayLevelKey); displayLevel != "" {
		config.DisplayLevel, err = logging.ToLevel(displayLevel)
		if err != nil {
			return logging.Config{}, err
		}
	}

	config.DisplayHighlight, err = logging.ToHighlight(v.GetString(LogDisplayHighlightKey), os.Stderr.Fd())
	if err != nil {
		return logging.Config{}, err
	}

	config.MaxSize = v.GetInt(LogMaxSizeKey)
	config.MaxFiles = v.GetInt(LogMaxFilesKey)
	if config.MaxSize <= 0 || config.MaxFiles <= 0 {
		return logging.Config{}, fmt.Errorf("%w: size %d, files %d", errInvalidLogSize, config.MaxSize, config.MaxFiles)
	}
	config.DisableFile = v.GetBool(LogDisableFileKey)
	return config, nil
}

// Settings returns the values of every key in [v] as YAML. The output can be
// used as a config file.
func Settings(v *viper.Viper) ([]byte, error) {
	settings := v.AllSettings()
	delete(settings, ConfigFileKey)
	return yaml.Marshal(settings)
}

// WriteDefaults writes a config file holding the default value of every key
// to [path]. An existing file is only replaced if [overwrite] is set.
func WriteDefaults(path string, overwrite bool) error {
	if !overwrite {
		exists, err := storage.FileExists(path)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", errFileExists, path)
		}
	}

	v := viper.New()
	if err := v.BindPFlags(BuildFlagSet()); err != nil {
		return err
	}
	b, err := Settings(v)
	if err != nil {
		return err
	}
	return perms.WriteFile(path, b, perms.ReadWrite)
}
