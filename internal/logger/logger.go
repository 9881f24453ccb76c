// SPDX-License-Identifier: EPL-2.0

// Package logger builds the process logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ik5/audvis/internal/config"
)

// New returns a logger and a closer for its output. With a log file
// configured it writes JSON records to a rotating file, otherwise text
// records to stderr.
func New(cfg *config.Config) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	if cfg.LogFilePath == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nopCloser{}
	}

	w := &lumberjack.Logger{
		Filename:   cfg.LogFilePath,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   true,
	}

	return slog.New(slog.NewJSONHandler(w, opts)), w
}

// ParseLevel maps debug, info, warn and error to a level. Anything else is
// warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
