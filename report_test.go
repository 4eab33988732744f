package fileformat

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

func sampleReport() *Report {
	return &Report{
		Path:   "testdata/sample.png",
		Size:   1024,
		Format: PortableNetworkGraphics,
		Checksums: map[ChecksumAlgorithm]string{
			ChecksumXXHash: "45ab6734b21e6968",
		},
	}
}

func TestTextFormatter(t *testing.T) {
	formatter, err := NewFormatter("text")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, sampleReport()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"testdata/sample.png",
		"Portable Network Graphics",
		"PNG",
		"image/png",
		"png",
		"Image",
		"1024",
		"45ab6734b21e6968",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextFormatterChecksumOrder(t *testing.T) {
	formatter, err := NewFormatter("text")
	if err != nil {
		t.Fatal(err)
	}

	report := sampleReport()
	report.Checksums = map[ChecksumAlgorithm]string{
		ChecksumXXHash: "45ab6734b21e6968",
		ChecksumMD5:    "5eb63bbbe01eeed093cb22bb8f5acdc3",
		ChecksumSHA256: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
	}

	var first bytes.Buffer
	if err := formatter.Format(&first, report); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Checksum lines come out sorted by algorithm name, so repeated runs
	// over the same report render identically.
	out := first.String()
	md5Idx := strings.Index(out, "md5:")
	sha256Idx := strings.Index(out, "sha256:")
	xxhashIdx := strings.Index(out, "xxhash:")
	if md5Idx == -1 || sha256Idx == -1 || xxhashIdx == -1 {
		t.Fatalf("output missing checksum lines:\n%s", out)
	}
	if !(md5Idx < sha256Idx && sha256Idx < xxhashIdx) {
		t.Errorf("checksums not in sorted order:\n%s", out)
	}

	for i := 0; i < 5; i++ {
		var again bytes.Buffer
		if err := formatter.Format(&again, report); err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if again.String() != out {
			t.Fatalf("output differs between runs:\n%s\n---\n%s", out, again.String())
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	formatter, err := NewFormatter("json")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, sampleReport()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["media_type"] != "image/png" {
		t.Errorf("media_type = %v", decoded["media_type"])
	}
	if decoded["format"] != "Portable Network Graphics" {
		t.Errorf("format = %v", decoded["format"])
	}
	if decoded["kind"] != "Image" {
		t.Errorf("kind = %v", decoded["kind"])
	}
	if decoded["size"] != float64(1024) {
		t.Errorf("size = %v", decoded["size"])
	}
}

func TestFormatterRegistry(t *testing.T) {
	t.Run("unregistered name", func(t *testing.T) {
		if _, err := NewFormatter("yaml"); err == nil {
			t.Error("expected error for unregistered formatter")
		}
	})

	t.Run("custom registration", func(t *testing.T) {
		RegisterFormatter("null", func() Formatter { return nullFormatter{} })
		formatter, err := NewFormatter("null")
		if err != nil {
			t.Fatalf("NewFormatter() error = %v", err)
		}
		if err := formatter.Format(io.Discard, sampleReport()); err != nil {
			t.Errorf("Format() error = %v", err)
		}
	})
}

type nullFormatter struct{}

func (nullFormatter) Format(io.Writer, *Report) error { return nil }
