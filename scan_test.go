package fileformat

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeTree lays out files under dir; keys are slash-separated relative
// paths.
func writeTree(t *testing.T, dir string, files map[string][]byte) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScannerScan(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"a.png":        []byte("\x89\x50\x4E\x47\x0D\x0A\x1A\x0A"),
		"b.gif":        []byte("GIF89a"),
		"sub/c.pdf":    []byte("%PDF-1.7"),
		"sub/deep/d":   {0x00, 0x01, 0x02},
		"sub/skip.tmp": []byte("GIF89a"),
	})

	t.Run("classifies all files", func(t *testing.T) {
		scanner, err := NewScanner()
		if err != nil {
			t.Fatal(err)
		}
		results, err := scanner.Scan(dir)
		if err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		if len(results) != 5 {
			t.Fatalf("got %d results, want 5", len(results))
		}

		byPath := make(map[string]FileFormat)
		for _, r := range results {
			if r.Err != nil {
				t.Fatalf("%s: %v", r.Path, r.Err)
			}
			rel, _ := filepath.Rel(dir, r.Path)
			byPath[filepath.ToSlash(rel)] = r.Report.Format
		}
		if byPath["a.png"] != PortableNetworkGraphics {
			t.Errorf("a.png = %v", byPath["a.png"])
		}
		if byPath["sub/c.pdf"] != PortableDocumentFormat {
			t.Errorf("sub/c.pdf = %v", byPath["sub/c.pdf"])
		}
		if byPath["sub/deep/d"] != ArbitraryBinaryData {
			t.Errorf("sub/deep/d = %v", byPath["sub/deep/d"])
		}
	})

	t.Run("include filter", func(t *testing.T) {
		scanner, err := NewScanner(WithInclude("*.png", "*.gif"))
		if err != nil {
			t.Fatal(err)
		}
		results, err := scanner.Scan(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 2 {
			t.Fatalf("got %d results, want 2", len(results))
		}
		for _, r := range results {
			if ext := filepath.Ext(r.Path); ext != ".png" && ext != ".gif" {
				t.Errorf("unexpected file selected: %s", r.Path)
			}
		}
	})

	t.Run("exclude filter", func(t *testing.T) {
		scanner, err := NewScanner(WithExclude("*.tmp"))
		if err != nil {
			t.Fatal(err)
		}
		results, err := scanner.Scan(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, r := range results {
			if filepath.Ext(r.Path) == ".tmp" {
				t.Errorf("excluded file was scanned: %s", r.Path)
			}
		}
		if len(results) != 4 {
			t.Errorf("got %d results, want 4", len(results))
		}
	})

	t.Run("max depth", func(t *testing.T) {
		scanner, err := NewScanner(WithMaxDepth(1))
		if err != nil {
			t.Fatal(err)
		}
		results, err := scanner.Scan(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 2 {
			t.Errorf("got %d results at depth 1, want 2", len(results))
		}
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := NewScanner(WithInclude("[unclosed"))
		if !IsInvalidPattern(err) {
			t.Errorf("IsInvalidPattern() = false for %v", err)
		}
	})

	t.Run("root must be a directory", func(t *testing.T) {
		scanner, err := NewScanner()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := scanner.Scan(filepath.Join(dir, "a.png")); err == nil {
			t.Error("expected error for file root")
		}
		if _, err := scanner.Scan(filepath.Join(dir, "missing")); !IsNotExist(err) {
			t.Errorf("IsNotExist() = false for %v", err)
		}
	})
}

func TestScannerCache(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"a.png": []byte("\x89\x50\x4E\x47\x0D\x0A\x1A\x0A"),
		"b.gif": []byte("GIF89a"),
	})

	cache := NewMemoryCache()
	scanner, err := NewScanner(WithCache(cache), WithCacheTTL(time.Minute))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := scanner.Scan(dir); err != nil {
		t.Fatal(err)
	}
	first := cache.Stats()
	if first.Misses == 0 {
		t.Fatal("first scan should miss the cache")
	}

	results, err := scanner.Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	second := cache.Stats()
	if got := second.Hits - first.Hits; got != 2 {
		t.Errorf("rescan hits = %d, want 2", got)
	}
	for _, r := range results {
		if r.Err != nil || r.Report == nil {
			t.Fatalf("cached rescan result broken: %+v", r)
		}
	}

	// Touching a file must invalidate its entry via the identity key.
	path := filepath.Join(dir, "a.png")
	if err := os.WriteFile(path, []byte("\x89\x50\x4E\x47\x0D\x0A\x1A\x0A extra"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := scanner.Scan(dir); err != nil {
		t.Fatal(err)
	}
	third := cache.Stats()
	if got := third.Misses - second.Misses; got == 0 {
		t.Error("modified file should miss the cache")
	}
}

func TestSummarize(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string][]byte{
		"a.png": []byte("\x89\x50\x4E\x47\x0D\x0A\x1A\x0A"),
		"b.gif": []byte("GIF89a"),
		"c.bin": {0x00, 0x01},
	})

	scanner, err := NewScanner()
	if err != nil {
		t.Fatal(err)
	}
	results, err := scanner.Scan(dir)
	if err != nil {
		t.Fatal(err)
	}

	summary := Summarize(results)
	if summary.Files != 3 {
		t.Errorf("Files = %d, want 3", summary.Files)
	}
	if summary.Identified != 2 {
		t.Errorf("Identified = %d, want 2", summary.Identified)
	}
	if summary.Errors != 0 {
		t.Errorf("Errors = %d, want 0", summary.Errors)
	}
	if summary.ByKind[KindImage] != 2 {
		t.Errorf("ByKind[Image] = %d, want 2", summary.ByKind[KindImage])
	}
	if summary.ByFormat[GraphicsInterchangeFormat] != 1 {
		t.Errorf("ByFormat[GIF] = %d, want 1", summary.ByFormat[GraphicsInterchangeFormat])
	}
	if summary.Bytes != 8+6+2 {
		t.Errorf("Bytes = %d, want 16", summary.Bytes)
	}
}
