package cache

import (
	"os"
	"path/filepath"
	"testing"
)

type analysisStub struct {
	RunID string  `json:"run_id"`
	Total float64 `json:"total"`
}

func TestFileCacheRoundTrip(t *testing.T) {
	t.Setenv("OUTPUT_DIR", t.TempDir())
	fc := NewFileCache[analysisStub]("cache")

	if _, ok := fc.Get("missing"); ok {
		t.Fatal("expected a miss for an unknown key")
	}

	want := analysisStub{RunID: "run-1", Total: 12.5}
	if err := fc.Set("key", want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := fc.Get("key")
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if got != want {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestFileCacheRejectsCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OUTPUT_DIR", dir)
	fc := NewFileCache[analysisStub]("cache")

	if err := fc.Set("key", analysisStub{RunID: "run-1"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	cacheFile := filepath.Join(dir, "cache", "key.json")
	corrupted := []byte(`{"data":{"run_id":"tampered","total":0},"checksum":"deadbeef"}`)
	if err := os.WriteFile(cacheFile, corrupted, 0644); err != nil {
		t.Fatalf("failed to corrupt cache file: %v", err)
	}

	if _, ok := fc.Get("key"); ok {
		t.Error("expected a miss for an entry with a bad checksum")
	}
}

func TestKeyForFilesIsContentAddressed(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OUTPUT_DIR", dir)
	fc := NewFileCache[analysisStub]("cache")

	fileA := filepath.Join(dir, "a.tif")
	fileB := filepath.Join(dir, "b.tif")
	os.WriteFile(fileA, []byte("same bytes"), 0644)
	os.WriteFile(fileB, []byte("same bytes"), 0644)

	keyA, err := fc.KeyForFiles(fileA)
	if err != nil {
		t.Fatalf("KeyForFiles failed: %v", err)
	}
	keyB, err := fc.KeyForFiles(fileB)
	if err != nil {
		t.Fatalf("KeyForFiles failed: %v", err)
	}
	if keyA != keyB {
		t.Errorf("identical contents yield different keys: %s vs %s", keyA, keyB)
	}

	os.WriteFile(fileB, []byte("different bytes"), 0644)
	keyB, _ = fc.KeyForFiles(fileB)
	if keyA == keyB {
		t.Error("different contents must yield different keys")
	}
}
