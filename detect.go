package fileformat

import (
	"errors"
	"io"
	"os"
)

// MaxBytes is the number of leading bytes classification examines. Every
// signature offset in the database lies within this window; the highest is
// the ISO 9660 descriptor at 0x9001, whose last pattern byte is the
// 36870th. Reading more than MaxBytes can never change a result.
const MaxBytes = 36870

// FromBytes classifies a byte buffer, typically the head of a file. It is
// infallible: content matching no signature, including an empty or
// all-zero buffer, classifies as ArbitraryBinaryData.
//
// The scan is a pure function of the buffer and the signature database.
// It never mutates its input and is safe for concurrent use.
func FromBytes(b []byte) FileFormat {
	for i := range signatureRules {
		if signatureRules[i].matches(b) {
			return signatureRules[i].format
		}
	}
	return ArbitraryBinaryData
}

// FromReader classifies content read from r. It reads at most MaxBytes;
// a source shorter than that is fine and is never an error. An error is
// returned only when the read itself fails.
func FromReader(r io.Reader) (FileFormat, error) {
	buf := make([]byte, MaxBytes)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return ArbitraryBinaryData, err
	}
	return FromBytes(buf[:n]), nil
}

// FromFile classifies the file at path. Only opening or reading the file
// can fail; failures are reported as a *PathError with the OS error
// mapped to the package sentinels where one applies.
func FromFile(path string) (FileFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return ArbitraryBinaryData, wrapPathError("identify", path, err)
	}
	defer f.Close()

	format, err := FromReader(f)
	if err != nil {
		return ArbitraryBinaryData, wrapPathError("identify", path, err)
	}
	return format, nil
}
