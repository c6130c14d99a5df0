// Package logging builds the charmbracelet/log logger shared by the CLI,
// the game controller and the SSH server.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// File, when set, receives log output with size-based rotation.
	File string

	// Level is a level name such as "debug" or "info". Empty means info.
	Level string

	// Console receives output when File is empty. Nil discards it, which is
	// what the full-screen TUI wants.
	Console io.Writer
}

// New creates a logger and returns a function that releases its output.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = l
	}

	var (
		w       io.Writer = io.Discard
		closeFn         = func() error { return nil }
	)
	switch {
	case opts.File != "":
		// 10MB per file, 3 backups, 7 days.
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		}
		w = lj
		closeFn = lj.Close
	case opts.Console != nil:
		w = opts.Console
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	if opts.File != "" {
		logger.SetFormatter(log.LogfmtFormatter)
	}
	return logger, closeFn, nil
}
