package fileformat

import (
	"encoding/hex"
	"hash"
	"io"
	"os"
	"time"
)

// Report describes one inspected source: its classification plus the file
// metadata and content fingerprints collected alongside it.
type Report struct {
	// Path is the inspected path, or the name given to InspectReader.
	Path string

	// Size is the content size in bytes.
	Size int64

	// ModTime is the file modification time. Zero for readers.
	ModTime time.Time

	// Format is the classification result.
	Format FileFormat

	// Checksums holds the hex-encoded digests requested via WithChecksum
	// or WithChecksums, keyed by algorithm. Nil when none were requested.
	Checksums map[ChecksumAlgorithm]string
}

// Checksum returns the digest for the given algorithm, or "" if it was not
// computed.
func (r *Report) Checksum(algorithm ChecksumAlgorithm) string {
	return r.Checksums[algorithm]
}

// Inspect classifies the file at path and returns a report. With no
// options only the leading MaxBytes are read; requesting checksums makes
// it stream the whole file once, feeding all hashers in the same pass.
func Inspect(path string, opts ...Option) (*Report, error) {
	o := newOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, wrapPathError("inspect", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, wrapPathError("inspect", path, err)
	}
	if info.IsDir() {
		return nil, &PathError{Op: "inspect", Path: path, Err: ErrIsDir}
	}

	report := &Report{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	if err := inspectContent(f, report, o.Checksums); err != nil {
		return nil, wrapPathError("inspect", path, err)
	}
	return report, nil
}

// InspectReader classifies content from r and returns a report under the
// given display name. The reader is consumed up to MaxBytes, or fully when
// checksums are requested; Size reflects the bytes actually read.
func InspectReader(r io.Reader, name string, opts ...Option) (*Report, error) {
	o := newOptions(opts)

	report := &Report{Path: name}
	counter := &countingReader{r: r}
	if err := inspectContent(counter, report, o.Checksums); err != nil {
		return nil, wrapPathError("inspect", name, err)
	}
	report.Size = counter.n
	return report, nil
}

// inspectContent classifies the head of r and, when algorithms are given,
// hashes the remainder in the same pass.
func inspectContent(r io.Reader, report *Report, algorithms []ChecksumAlgorithm) error {
	var hashers map[ChecksumAlgorithm]hash.Hash
	if len(algorithms) > 0 {
		hashers = make(map[ChecksumAlgorithm]hash.Hash, len(algorithms))
		writers := make([]io.Writer, 0, len(algorithms))
		for _, algo := range algorithms {
			h, err := NewHasher(algo)
			if err != nil {
				return err
			}
			hashers[algo] = h
			writers = append(writers, h)
		}
		r = io.TeeReader(r, io.MultiWriter(writers...))
	}

	head := make([]byte, MaxBytes)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return err
	}
	report.Format = FromBytes(head[:n])

	if hashers != nil {
		// Drain the rest so the hashers see the full content.
		if _, err := io.Copy(io.Discard, r); err != nil {
			return err
		}
		report.Checksums = make(map[ChecksumAlgorithm]string, len(hashers))
		for algo, h := range hashers {
			report.Checksums[algo] = hex.EncodeToString(h.Sum(nil))
		}
	}
	return nil
}

// countingReader tracks how many bytes have been read through it.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
