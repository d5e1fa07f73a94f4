package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const docURL = "https://example.com/rules.md"

func TestNew(t *testing.T) {
	dir := t.TempDir()

	c, err := New("documents", dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Version != cacheVersion {
		t.Errorf("Version = %q, want %q", c.Version, cacheVersion)
	}
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0", c.Size())
	}
	if want := filepath.Join(dir, "documents.json"); c.Path() != want {
		t.Errorf("Path() = %q, want %q", c.Path(), want)
	}
}

func TestNewDefaultsToCacheDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RULEGEN_CACHE_DIR", dir)

	c, err := New("documents", "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if filepath.Dir(c.Path()) != dir {
		t.Errorf("Path() = %q, want it under %q", c.Path(), dir)
	}
}

func TestSetAndGet(t *testing.T) {
	c, err := New("documents", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	c.Set(docURL, "# Rules\n")
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1", c.Size())
	}

	got, ok := c.Get(docURL, time.Hour)
	if !ok || got != "# Rules\n" {
		t.Errorf("Get() = (%q, %v), want cached content", got, ok)
	}

	if _, ok := c.Get("https://example.com/other.md", time.Hour); ok {
		t.Error("Get() found a key that was never set")
	}
}

func TestGetExpires(t *testing.T) {
	c, err := New("documents", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c.Entries[docURL] = Entry{Content: "old", CachedAt: time.Now().Add(-2 * time.Hour)}

	if _, ok := c.Get(docURL, 0); !ok {
		t.Error("zero ttl should never expire")
	}
	if _, ok := c.Get(docURL, time.Hour); ok {
		t.Error("entry older than ttl should be a miss")
	}
	if c.Size() != 0 {
		t.Errorf("expired entry should be dropped, Size() = %d", c.Size())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	first, err := New("documents", dir)
	if err != nil {
		t.Fatal(err)
	}
	first.Set(docURL, "persisted")
	if err := first.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second, err := New("documents", dir)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := second.Get(docURL, time.Hour)
	if !ok || got != "persisted" {
		t.Errorf("loaded Get() = (%q, %v), want persisted content", got, ok)
	}
}

func TestCorruptedFileStartsFresh(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "documents.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := New("documents", dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0", c.Size())
	}
}

func TestVersionMismatchInvalidates(t *testing.T) {
	dir := t.TempDir()
	data := `{"version":"0.1","entries":{"` + docURL + `":{"content":"x","cached_at":"2026-01-01T00:00:00Z"}}}`
	if err := os.WriteFile(filepath.Join(dir, "documents.json"), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := New("documents", dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0 after version mismatch", c.Size())
	}
	if c.Version != cacheVersion {
		t.Errorf("Version = %q, want %q", c.Version, cacheVersion)
	}
}

func TestStaleAndPrune(t *testing.T) {
	c, err := New("documents", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c.Set("fresh", "a")
	c.Entries["old"] = Entry{Content: "b", CachedAt: time.Now().Add(-2 * DefaultTTL)}

	if !c.IsStale(DefaultTTL) {
		t.Error("IsStale() = false with an expired entry")
	}
	if n := c.Prune(DefaultTTL); n != 1 {
		t.Errorf("Prune() = %d, want 1", n)
	}
	if c.IsStale(DefaultTTL) {
		t.Error("IsStale() = true after pruning")
	}
	if _, ok := c.Get("fresh", DefaultTTL); !ok {
		t.Error("fresh entry was pruned")
	}
}

func TestClear(t *testing.T) {
	c, err := New("documents", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c.Set(docURL, "x")
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if c.Size() != 0 {
		t.Errorf("Size() = %d after Clear", c.Size())
	}
	if _, err := os.Stat(c.Path()); !os.IsNotExist(err) {
		t.Errorf("cache file still present: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}
