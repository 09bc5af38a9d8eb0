package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
)

// StateDir returns the directory termdialog keeps its log in. Priority:
// 1) $XDG_STATE_HOME/termdialog (if set)
// 2) ~/.local/state/termdialog
// 3) /tmp/termdialog-state-<uid>
//
// The directory is created when missing.
func StateDir() (string, error) {
	var dir string
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		dir = filepath.Join(stateHome, "termdialog")
	} else if home, err := os.UserHomeDir(); err == nil && home != "" {
		dir = filepath.Join(home, ".local", "state", "termdialog")
	} else {
		dir = fmt.Sprintf("/tmp/termdialog-state-%d", os.Getuid())
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create state dir: %w", err)
	}
	return dir, nil
}

// LogPath returns the default log file path.
func LogPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "termdialog.log"), nil
}
