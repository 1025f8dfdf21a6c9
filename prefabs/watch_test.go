package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want ChangeKind
		ok   bool
	}{
		{"prefabs/player.yaml", ChangePlayer, true},
		{"prefabs/Camera.yml", ChangeCamera, true},
		{"levels/meadow.yaml", ChangeLevel, true},
		{"prefabs/scripts/hop.tengo", ChangeScript, true},
		{"prefabs/notes.txt", 0, false},
		{"prefabs/player.yaml~", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := Classify(tc.path)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("Classify(%q) = %v, %v; want %v, %v", tc.path, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(path, []byte("name: p\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Changes:
		if c.Kind != ChangePlayer || filepath.Base(c.Path) != "player.yaml" {
			t.Fatalf("unexpected change %+v", c)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("no change reported")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close should be a no-op, got %v", err)
	}
}
