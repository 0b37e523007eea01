// SPDX-License-Identifier: MIT

// Package logger owns the process-wide slog.Logger used by the gauss CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config selects where log records go and at which level.
type Config struct {
	// Path, when set, appends JSON records to that file instead of Writer.
	Path string
	// Writer receives text records when Path is empty. Nil means os.Stderr.
	Writer io.Writer
	// Debug lowers the level to slog.LevelDebug and adds source positions.
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
)

// Setup installs the global logger and returns a cleanup that restores the
// discarding logger and closes the log file, if any.
func Setup(cfg Config) (func() error, error) {
	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var (
		h slog.Handler
		f *os.File
	)
	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			setDiscard()
			return nil, err
		}
		var err error
		f, err = os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			setDiscard()
			return nil, err
		}
		h = slog.NewJSONHandler(f, opts)
	} else {
		w := cfg.Writer
		if w == nil {
			w = os.Stderr
		}
		h = slog.NewTextHandler(w, opts)
	}

	l := slog.New(h)

	mu.Lock()
	global = l
	logFile = f
	mu.Unlock()

	l.Debug("logger.initialized", "path", cfg.Path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		global = discard()
		return cerr
	}

	return cleanup, nil
}

// L returns the current global logger. It never returns nil.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
