// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level zapcore.Level

const (
	Verbo Level = iota - 9
	Debug       = Level(zapcore.DebugLevel)
	Info        = Level(zapcore.InfoLevel)
	Warn        = Level(zapcore.WarnLevel)
	Error       = Level(zapcore.ErrorLevel)
	Fatal       = Level(zapcore.FatalLevel)
	Off         = Level(zapcore.FatalLevel + 1)
)

const (
	fatalStr   = "FATAL"
	errorStr   = "ERROR"
	warnStr    = "WARN"
	infoStr    = "INFO"
	debugStr   = "DEBUG"
	verboStr   = "VERBO"
	offStr     = "OFF"
	unknownStr = "UNKNO"
)

var levelNames = map[string]Level{
	offStr:   Off,
	fatalStr: Fatal,
	errorStr: Error,
	warnStr:  Warn,
	infoStr:  Info,
	debugStr: Debug,
	verboStr: Verbo,
}

// ToLevel is the inverse of Level.String()
func ToLevel(l string) (Level, error) {
	level, ok := levelNames[strings.ToUpper(l)]
	if !ok {
		return Info, fmt.Errorf("unknown log level: %q", l)
	}
	return level, nil
}

func (l Level) String() string {
	switch l {
	case Off:
		return offStr
	case Fatal:
		return fatalStr
	case Error:
		return errorStr
	case Warn:
		return warnStr
	case Info:
		return infoStr
	case Debug:
		return debugStr
	case Verbo:
		return verboStr
	default:
		// This should never happen
		return unknownStr
	}
}

// LowerString returns the lowercase name of the level, as used in flags and
// config files.
func (l Level) LowerString() string {
	return strings.ToLower(l.String())
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*l, err = ToLevel(str)
	return err
}

func (l Level) atomicLevel() zap.AtomicLevel {
	return zap.NewAtomicLevelAt(zapcore.Level(l))
}
