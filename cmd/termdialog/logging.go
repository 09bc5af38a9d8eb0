package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/1broseidon/termdialog/internal/config"
	"github.com/1broseidon/termdialog/internal/runtimepath"
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger opens the log file named by the config (or the default state
// path) and returns a text logger writing to it. The TUI owns the terminal,
// so nothing is logged to stderr.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	path := cfg.LogFile
	if path == "" {
		p, err := runtimepath.LogPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	return logger, func() { _ = f.Close() }, nil
}
