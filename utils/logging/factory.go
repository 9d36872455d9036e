// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Factory creates new instances of different types of Logger
type Factory interface {
	// Make creates a new logger with name [name]
	Make(name string) (Logger, error)

	// Close stops and clears all of a Factory's instantiated loggers
	Close()
}

type factory struct {
	config Config
	lock   sync.Mutex

	// Logger name --> the logger.
	loggers map[string]Logger
}

// NewFactory returns a new instance of a Factory producing loggers configured
// with the values set in the [config] parameter
func NewFactory(config Config) Factory {
	return &factory{
		config:  config,
		loggers: make(map[string]Logger),
	}
}

// Assumes [f.lock] is held
func (f *factory) makeLogger(name string) (Logger, error) {
	if _, ok := f.loggers[name]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", name)
	}

	consoleEnc := f.config.DisplayHighlight.ConsoleEncoder()
	consoleCore := NewWrappedCore(f.config.DisplayLevel, nopCloser{os.Stderr}, consoleEnc)
	consoleCore.WriterDisabled = f.config.DisableWriterDisplaying
	cores := []WrappedCore{consoleCore}

	if !f.config.DisableFile {
		if err := os.MkdirAll(f.config.Directory, 0o750); err != nil {
			return nil, fmt.Errorf("couldn't create log directory: %w", err)
		}
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(f.config.Directory, name+".log"),
			MaxSize:    f.config.MaxSize,
			MaxBackups: f.config.MaxFiles,
			MaxAge:     f.config.MaxAge,
			Compress:   f.config.Compress,
		}
		cores = append(cores, NewWrappedCore(f.config.LogLevel, rw, JSONEncoder()))
	}

	l := NewLogger("", cores...)
	f.loggers[name] = l
	return l, nil
}

func (f *factory) Make(name string) (Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	return f.makeLogger(name)
}

func (f *factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, lg := range f.loggers {
		lg.Stop()
	}
	f.loggers = nil
}

// nopCloser keeps Stop from closing the process' standard streams.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
