// Package logging builds the application logger. The terminal belongs to
// the game, so local runs log to a size-rotated file instead of stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the rotating file sink.
type Options struct {
	Path       string // log file; empty discards output
	Level      string // debug, info, warn, error
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultOptions logs at info level to dir/platformer.log, rotating at 10MB.
func DefaultOptions(dir string) Options {
	opts := Options{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
	if dir != "" {
		opts.Path = filepath.Join(dir, "platformer.log")
	}
	return opts
}

// New returns a logger and the closer for its sink.
// An unparsable level falls back to info.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		level = log.InfoLevel
	}

	if opts.Path == "" {
		return log.NewWithOptions(io.Discard, log.Options{Level: level}), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, err
	}

	sink := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}
	logger := log.NewWithOptions(sink, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "platformer",
		Level:           level,
	})
	return logger, sink, nil
}

// Stderr returns a logger for foreground services such as the SSH server.
func Stderr(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
