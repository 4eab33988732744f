// Package fileformat identifies the format of a byte buffer or file by
// recognizing magic byte signatures, independently of the file's name or
// extension.
//
// Classification walks an ordered, immutable signature database and
// returns the first matching format. Rules for longer, more specific
// signatures are listed before shorter, generic ones, so a buffer that
// satisfies several rules resolves to the most specific applicable
// format (an APNG is never reported as plain PNG, an OpenDocument file
// never as plain ZIP). Content matching no rule classifies as
// [ArbitraryBinaryData]; there is no error path for content.
//
// # Basic Usage
//
//	format := fileformat.FromBytes(buffer)
//	fmt.Println(format.MediaType()) // e.g. "image/png"
//	fmt.Println(format.Extension()) // e.g. "png"
//
//	format, err := fileformat.FromFile("video.mkv")
//	if err != nil {
//	    log.Fatal(err) // I/O failure only, never a content problem
//	}
//
// At most [MaxBytes] leading bytes are examined; every signature offset
// lies within that window, so sources of any length classify correctly.
//
// # Catalog
//
// Every [FileFormat] resolves to reference metadata: a display name,
// an abbreviation where one exists, a media type, a preferred extension
// and a broad [Kind]. [ByExtension] and [ByMediaType] run the mapping in
// reverse; they are catalog queries only and play no part in content
// classification.
//
// # Toolkit Surfaces
//
// Around the core classifier the package provides:
//
//   - [Inspect] / [InspectReader]: classification plus file metadata and
//     optional content fingerprints (xxHash by default, see
//     [ChecksumAlgorithm]).
//   - [Scanner]: concurrent directory scanning with glob include/exclude
//     filters and an optional report [Cache].
//   - [Watcher] / [PollChanges]: re-classification of files as they
//     change, via native filesystem events or polling.
//   - [Formatter]: pluggable text/JSON report rendering.
//
// # Concurrency
//
// The signature database is built once and never mutated, and
// [FromBytes] keeps no state, so any number of classifications may run
// concurrently without coordination.
package fileformat
