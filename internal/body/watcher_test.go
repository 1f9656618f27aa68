package body

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/solarpath/solcal/internal/logging"
)

func TestWatchCatalogReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bodies.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry()
	reloaded := make(chan int, 1)
	w, err := WatchCatalog(path, reg, logging.Discard(), func(n int) {
		select {
		case reloaded <- n:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchCatalog error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case n := <-reloaded:
		if n != 1 {
			t.Errorf("reload reported %d bodies, want 1", n)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("catalog change was not picked up")
	}

	if _, ok := reg.Lookup("ceres"); !ok {
		t.Error("reloaded body missing from registry")
	}
}

func TestWatchCatalogKeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bodies.toml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry()
	bodies, err := LoadCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	reg.SetCatalog(bodies)

	w, err := WatchCatalog(path, reg, logging.Discard(), nil)
	if err != nil {
		t.Fatalf("WatchCatalog error: %v", err)
	}
	defer w.Close()

	// A broken rewrite must not wipe the previous catalog.
	if err := os.WriteFile(path, []byte("[[body\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)

	if _, ok := reg.Lookup("ceres"); !ok {
		t.Error("previous catalog lost after failed reload")
	}
}
