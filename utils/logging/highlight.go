// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Highlighting modes available
const (
	Plain Highlight = iota
	Colors
)

var errUnknownHighlight = errors.New("unknown highlight")

// Highlight mode to apply to displayed logs
type Highlight int

// ToHighlight chooses a highlighting mode. "auto" highlights only when [fd]
// is a terminal.
func ToHighlight(h string, fd uintptr) (Highlight, error) {
	switch strings.ToUpper(h) {
	case "PLAIN":
		return Plain, nil
	case "COLORS":
		return Colors, nil
	case "AUTO":
		if !term.IsTerminal(int(fd)) {
			return Plain, nil
		}
		return Colors, nil
	default:
		return Plain, fmt.Errorf("%w: %s", errUnknownHighlight, h)
	}
}

func (h Highlight) String() string {
	switch h {
	case Plain:
		return "plain"
	case Colors:
		return "colors"
	default:
		return errUnknownHighlight.Error()
	}
}

func (h Highlight) levelEncoder() zapcore.LevelEncoder {
	if h == Colors {
		return colorLevelEncoder
	}
	return levelEncoder
}

// ConsoleEncoder returns the encoder used for displayed logs.
func (h Highlight) ConsoleEncoder() zapcore.Encoder {
	config := zapcore.EncoderConfig{
		TimeKey:          "timestamp",
		LevelKey:         "level",
		NameKey:          "logger",
		CallerKey:        zapcore.OmitKey,
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      h.levelEncoder(),
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	}
	return zapcore.NewConsoleEncoder(config)
}

// JSONEncoder returns the encoder used for log files.
func JSONEncoder() zapcore.Encoder {
	config := zap.NewProductionEncoderConfig()
	config.TimeKey = "timestamp"
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncodeLevel = levelEncoder
	config.EncodeDuration = zapcore.StringDurationEncoder
	return zapcore.NewJSONEncoder(config)
}

var levelColors = map[Level]string{
	Fatal: "\x1b[31m",
	Error: "\x1b[91m",
	Warn:  "\x1b[33m",
	Info:  "\x1b[32m",
	Debug: "\x1b[36m",
	Verbo: "\x1b[37m",
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + Level(l).String() + "]")
}

func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	color, ok := levelColors[Level(l)]
	if !ok {
		levelEncoder(l, enc)
		return
	}
	enc.AppendString(color + "[" + Level(l).String() + "]\x1b[0m")
}
