package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitEvent(t *testing.T, w *Watcher) (string, bool) {
	t.Helper()
	select {
	case name := <-w.Events:
		return name, true
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(3 * time.Second):
	}
	return "", false
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.toml")
	if err := os.WriteFile(path, []byte("count = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("count = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	name, ok := waitEvent(t, w)
	if !ok {
		t.Fatal("no event after write")
	}
	abs, _ := filepath.Abs(path)
	if name != abs {
		t.Errorf("event for %q, want %q", name, abs)
	}
}

func TestWatcherFollowsRenameSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.yaml")
	if err := os.WriteFile(path, []byte("count: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	tmp := filepath.Join(dir, ".grid.yaml.swp")
	if err := os.WriteFile(tmp, []byte("count: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	if _, ok := waitEvent(t, w); !ok {
		t.Fatal("no event after rename over the watched file")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.toml")
	_ = os.WriteFile(path, []byte(""), 0644)

	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	_ = os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0644)
	select {
	case name := <-w.Events:
		t.Errorf("unexpected event for %q", name)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.toml")
	_ = os.WriteFile(path, nil, 0644)
	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events should be closed")
	}
}

func TestNewMissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "grid.toml")); err == nil {
		t.Error("New should fail when the directory does not exist")
	}
}

func TestWatcherReportsQuickSecondSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.toml")
	_ = os.WriteFile(path, []byte("count = 1\n"), 0644)
	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("count = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := waitEvent(t, w); !ok {
		t.Fatal("no event after first save")
	}

	time.Sleep(40 * time.Millisecond)
	if err := os.WriteFile(path, []byte("count = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := waitEvent(t, w); !ok {
		t.Fatal("save 40ms after the previous one was not reported")
	}
}

func TestWatcherReportsBurstOnceSettled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.toml")
	_ = os.WriteFile(path, []byte("count = 0\n"), 0644)
	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	for i := 1; i <= 5; i++ {
		if err := os.WriteFile(path, []byte(fmt.Sprintf("count = %d\n", i)), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if _, ok := waitEvent(t, w); !ok {
		t.Fatal("no event after burst")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "count = 5\n" {
		t.Errorf("contents at event = %q, want the last write", got)
	}
	select {
	case name := <-w.Events:
		t.Errorf("burst reported twice (%q)", name)
	case <-time.After(300 * time.Millisecond):
	}
}
