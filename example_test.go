package fileformat_test

import (
	"bytes"
	"fmt"

	"github.com/gobeaver/fileformat"
)

func ExampleFromBytes() {
	header := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	format := fileformat.FromBytes(header)

	fmt.Println(format.Name())
	fmt.Println(format.MediaType())
	fmt.Println(format.Extension())
	// Output:
	// Portable Network Graphics
	// image/png
	// png
}

func ExampleFromBytes_fallback() {
	// Data matching no signature still yields a usable format.
	format := fileformat.FromBytes([]byte{0x00, 0x01, 0x02, 0x03})

	fmt.Println(format.MediaType())
	fmt.Println(format.Extension())
	// Output:
	// application/octet-stream
	// bin
}

func ExampleFromReader() {
	r := bytes.NewReader([]byte("GIF89a..."))

	format, err := fileformat.FromReader(r)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(format.Name())
	fmt.Println(format.Kind())
	// Output:
	// Graphics Interchange Format
	// Image
}

func ExampleByMediaType() {
	formats := fileformat.ByMediaType("application/pdf")
	if len(formats) == 0 {
		fmt.Println("unknown media type")
		return
	}

	fmt.Println(formats[0].Name())
	fmt.Println(formats[0].Extension())
	// Output:
	// Portable Document Format
	// pdf
}

func ExampleByExtension() {
	for _, format := range fileformat.ByExtension(".FLAC") {
		fmt.Println(format.Name())
		fmt.Println(format.Kind())
	}
	// Output:
	// Free Lossless Audio Codec
	// Audio
}

func ExampleInspectReader() {
	data := []byte("%PDF-1.7 example document")
	r := bytes.NewReader(data)

	report, err := fileformat.InspectReader(r, "example.pdf",
		fileformat.WithChecksum(fileformat.ChecksumSHA256),
	)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(report.Format.MediaType())
	fmt.Println(report.Size)
	fmt.Println(report.Checksum(fileformat.ChecksumSHA256))
	// Output:
	// application/pdf
	// 25
	// 30af3441524b7d105998bc340e593acf15ff520c9f7f38128cd14cf05c25bbbe
}
