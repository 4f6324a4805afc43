package storage

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func TestBackendsAreRegistered(t *testing.T) {
	for _, name := range []string{BackendSQLite, BackendGData, BackendMemory} {
		if !registry.Exists(name) {
			t.Errorf("backend %q not registered", name)
		}
	}
}

func TestOpenSQLiteBackend(t *testing.T) {
	b, err := registry.Open(BackendSQLite, registry.Options{
		Path:   filepath.Join(t.TempDir(), "scores.db"),
		GameID: "flappy",
	})
	if err != nil {
		t.Fatalf("Open(sqlite) failed: %v", err)
	}
	defer b.Close()

	if err := b.SetBest(8); err != nil {
		t.Fatalf("SetBest() failed: %v", err)
	}
	if best, err := b.GetBest(); err != nil || best != 8 {
		t.Errorf("GetBest() = %d, %v; expected 8", best, err)
	}
	if _, ok := b.(*GameScores); !ok {
		t.Errorf("sqlite backend should keep run history, got %T", b)
	}
}
