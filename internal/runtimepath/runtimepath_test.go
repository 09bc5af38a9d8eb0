package runtimepath

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStateDir_UsesXDGStateHomeWhenSet(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_STATE_HOME", td)

	got, err := StateDir()
	if err != nil {
		t.Fatalf("StateDir() error: %v", err)
	}
	want := filepath.Join(td, "termdialog")
	if got != want {
		t.Fatalf("StateDir() = %q, want %q", got, want)
	}
	if info, err := os.Stat(got); err != nil || !info.IsDir() {
		t.Fatalf("StateDir() did not create %q: %v", got, err)
	}
}

func TestStateDir_FallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", home)

	got, err := StateDir()
	if err != nil {
		t.Fatalf("StateDir() error: %v", err)
	}
	want := filepath.Join(home, ".local", "state", "termdialog")
	if got != want {
		t.Fatalf("StateDir() = %q, want %q", got, want)
	}
}

func TestLogPath(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_STATE_HOME", td)

	got, err := LogPath()
	if err != nil {
		t.Fatalf("LogPath() error: %v", err)
	}
	if want := filepath.Join(td, "termdialog", "termdialog.log"); got != want {
		t.Fatalf("LogPath() = %q, want %q", got, want)
	}
}
