// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

// RotatingWriterConfig describes the rolling log files kept on disk.
type RotatingWriterConfig struct {
	// MaxSize is the size, in megabytes, a log file may reach before it is
	// rotated.
	MaxSize int `json:"maxSize"`
	// MaxFiles is the number of rotated files kept around.
	MaxFiles int `json:"maxFiles"`
	// MaxAge is the number of days rotated files are kept. Zero keeps them
	// forever.
	MaxAge    int    `json:"maxAge"`
	Directory string `json:"directory"`
	Compress  bool   `json:"compress"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool      `json:"disableWriterDisplaying"`
	DisableFile             bool      `json:"disableFile"`
	LogLevel                Level     `json:"logLevel"`
	DisplayLevel            Level     `json:"displayLevel"`
	DisplayHighlight        Highlight `json:"displayHighlight"`
}

// DefaultConfig mirrors the rotation policy of the desktop tool: 1 MiB files,
// five backups.
func DefaultConfig(dir string) Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:   1,
			MaxFiles:  5,
			Directory: dir,
		},
		LogLevel:         Info,
		DisplayLevel:     Info,
		DisplayHighlight: Plain,
	}
}
