package fileformat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	content := []byte("\x89\x50\x4E\x47\x0D\x0A\x1A\x0A0123456789")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("metadata and classification", func(t *testing.T) {
		report, err := Inspect(path)
		if err != nil {
			t.Fatalf("Inspect() error = %v", err)
		}
		if report.Format != PortableNetworkGraphics {
			t.Errorf("Format = %v, want PortableNetworkGraphics", report.Format)
		}
		if report.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", report.Size, len(content))
		}
		if report.Path != path {
			t.Errorf("Path = %q, want %q", report.Path, path)
		}
		if report.ModTime.IsZero() {
			t.Error("ModTime is zero")
		}
		if report.Checksums != nil {
			t.Errorf("Checksums = %v, want none by default", report.Checksums)
		}
	})

	t.Run("with checksums", func(t *testing.T) {
		report, err := Inspect(path, WithChecksums(ChecksumSHA256, ChecksumXXHash))
		if err != nil {
			t.Fatalf("Inspect() error = %v", err)
		}
		if len(report.Checksums) != 2 {
			t.Fatalf("got %d checksums, want 2", len(report.Checksums))
		}
		want, err := CalculateChecksum(strings.NewReader(string(content)), ChecksumSHA256)
		if err != nil {
			t.Fatal(err)
		}
		if got := report.Checksum(ChecksumSHA256); got != want {
			t.Errorf("sha256 = %s, want %s", got, want)
		}
		if report.Checksum(ChecksumMD5) != "" {
			t.Error("unrequested algorithm should return empty digest")
		}
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Inspect(dir)
		if err == nil {
			t.Fatal("expected error for directory")
		}
		if !strings.Contains(err.Error(), "is a directory") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Inspect(filepath.Join(dir, "missing"))
		if !IsNotExist(err) {
			t.Errorf("IsNotExist() = false for %v", err)
		}
	})

	t.Run("bad algorithm", func(t *testing.T) {
		_, err := Inspect(path, WithChecksum(ChecksumAlgorithm("nope")))
		if err == nil {
			t.Fatal("expected error for unsupported algorithm")
		}
	})
}

func TestInspectReader(t *testing.T) {
	t.Run("classifies and counts", func(t *testing.T) {
		report, err := InspectReader(strings.NewReader("GIF89a trailer"), "upload")
		if err != nil {
			t.Fatalf("InspectReader() error = %v", err)
		}
		if report.Format != GraphicsInterchangeFormat {
			t.Errorf("Format = %v, want GraphicsInterchangeFormat", report.Format)
		}
		if report.Path != "upload" {
			t.Errorf("Path = %q, want %q", report.Path, "upload")
		}
		if report.Size != int64(len("GIF89a trailer")) {
			t.Errorf("Size = %d", report.Size)
		}
	})

	t.Run("checksum covers full content", func(t *testing.T) {
		content := strings.Repeat("x", MaxBytes+500)
		report, err := InspectReader(strings.NewReader(content), "big", WithChecksum(ChecksumSHA256))
		if err != nil {
			t.Fatalf("InspectReader() error = %v", err)
		}
		want, err := CalculateChecksum(strings.NewReader(content), ChecksumSHA256)
		if err != nil {
			t.Fatal(err)
		}
		if got := report.Checksum(ChecksumSHA256); got != want {
			t.Errorf("sha256 = %s, want %s", got, want)
		}
		if report.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", report.Size, len(content))
		}
	})
}
