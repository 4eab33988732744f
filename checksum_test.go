package fileformat

import (
	"errors"
	"strings"
	"testing"
)

func TestCalculateChecksum(t *testing.T) {
	const content = "hello world"

	tests := []struct {
		algorithm ChecksumAlgorithm
		want      string
	}{
		{ChecksumMD5, "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{ChecksumSHA1, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"},
		{ChecksumSHA256, "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
		{ChecksumCRC32, "0d4a1185"},
		{ChecksumXXHash, "45ab6734b21e6968"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			got, err := CalculateChecksum(strings.NewReader(content), tt.algorithm)
			if err != nil {
				t.Fatalf("CalculateChecksum() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCalculateChecksumUnsupported(t *testing.T) {
	_, err := CalculateChecksum(strings.NewReader("x"), ChecksumAlgorithm("whirlpool"))
	if !errors.Is(err, ErrNotSupported) {
		t.Errorf("error = %v, want ErrNotSupported", err)
	}
}

func TestCalculateChecksums(t *testing.T) {
	algorithms := []ChecksumAlgorithm{ChecksumMD5, ChecksumSHA256, ChecksumXXHash}

	got, err := CalculateChecksums(strings.NewReader("hello world"), algorithms)
	if err != nil {
		t.Fatalf("CalculateChecksums() error = %v", err)
	}
	if len(got) != len(algorithms) {
		t.Fatalf("got %d checksums, want %d", len(got), len(algorithms))
	}
	if got[ChecksumMD5] != "5eb63bbbe01eeed093cb22bb8f5acdc3" {
		t.Errorf("md5 = %s", got[ChecksumMD5])
	}
	if got[ChecksumXXHash] != "45ab6734b21e6968" {
		t.Errorf("xxhash = %s", got[ChecksumXXHash])
	}
}

func TestCalculateChecksumsEmpty(t *testing.T) {
	if _, err := CalculateChecksums(strings.NewReader("x"), nil); err == nil {
		t.Error("expected error for empty algorithm list")
	}
}
