package assets

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestWatcherReportsChangedFiles(t *testing.T) {
	dir := t.TempDir()
	vs := filepath.Join(dir, VertexFile)
	if err := os.WriteFile(vs, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(log.New(io.Discard))
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	if err := w.Watch(dir); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(dir + "/"); err != nil {
		t.Fatal(err)
	}
	if len(w.watched) != 1 {
		t.Fatalf("watched %v", w.watched)
	}

	if err := os.WriteFile(vs, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		paths := w.Drain()
		if slices.Contains(paths, vs) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("no change reported for", vs)
}

func TestWatcherWatchErrors(t *testing.T) {
	w, err := NewWatcher(nil)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	if err := w.Watch(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("watching a missing path succeeded")
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal("second Close:", err)
	}
	if err := w.Watch(t.TempDir()); err == nil {
		t.Error("Watch after Close succeeded")
	}
	if paths := w.Drain(); len(paths) != 0 {
		t.Errorf("Drain after Close = %v", paths)
	}
}
