package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRepository_LoadMissing(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	m, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !m.IsEmpty() {
		t.Errorf("manifest not empty: %+v", m)
	}
}

func TestFileRepository_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.cbor")
	if err := os.WriteFile(input, []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(input)
	if err != nil {
		t.Fatal(err)
	}

	repo := NewFileRepository(filepath.Join(dir, "out"))
	m := NewManifest()
	m.Record("a.cbor", info)
	if err := repo.Save(context.Background(), m); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(repo.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}

	loaded, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Unchanged("a.cbor", info) {
		t.Errorf("Unchanged = false after round trip: %+v", loaded.Files["a.cbor"])
	}
	if loaded.LastRunAt.IsZero() {
		t.Error("LastRunAt not set")
	}

	// Touch the file: same size, new mtime.
	later := info.ModTime().Add(2 * time.Second)
	if err := os.Chtimes(input, later, later); err != nil {
		t.Fatal(err)
	}
	info2, _ := os.Stat(input)
	if loaded.Unchanged("a.cbor", info2) {
		t.Error("Unchanged = true after mtime change")
	}

	loaded.Forget("a.cbor")
	if !loaded.IsEmpty() {
		t.Error("Forget did not remove entry")
	}
}

func TestFileRepository_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileRepository(dir).Load(context.Background()); err == nil {
		t.Error("Load of corrupt manifest returned nil error")
	}
}
