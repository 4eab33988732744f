package fileformat

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Formatter renders a report to a writer.
type Formatter interface {
	Format(w io.Writer, report *Report) error
}

// FormatterFactory is a function that creates a Formatter
type FormatterFactory func() Formatter

var (
	formatterFactories = make(map[string]FormatterFactory)
	formatterMutex     sync.RWMutex
)

// RegisterFormatter registers a formatter factory function
func RegisterFormatter(name string, factory FormatterFactory) {
	formatterMutex.Lock()
	defer formatterMutex.Unlock()
	formatterFactories[name] = factory
}

// NewFormatter creates a formatter instance by registered name
func NewFormatter(name string) (Formatter, error) {
	formatterMutex.RLock()
	factory, exists := formatterFactories[name]
	formatterMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("formatter %s not registered", name)
	}

	return factory(), nil
}

func init() {
	RegisterFormatter("text", func() Formatter { return textFormatter{} })
	RegisterFormatter("json", func() Formatter { return jsonFormatter{} })
}

// textFormatter prints a report as aligned key/value lines.
type textFormatter struct{}

func (textFormatter) Format(w io.Writer, report *Report) error {
	format := report.Format
	if _, err := fmt.Fprintf(w, "%s:\n", report.Path); err != nil {
		return err
	}
	fmt.Fprintf(w, "  format:     %s\n", format.Name())
	if short := format.ShortName(); short != "" {
		fmt.Fprintf(w, "  short name: %s\n", short)
	}
	fmt.Fprintf(w, "  media type: %s\n", format.MediaType())
	fmt.Fprintf(w, "  extension:  %s\n", format.Extension())
	fmt.Fprintf(w, "  kind:       %s\n", format.Kind())
	fmt.Fprintf(w, "  size:       %d\n", report.Size)
	algorithms := make([]ChecksumAlgorithm, 0, len(report.Checksums))
	for algo := range report.Checksums {
		algorithms = append(algorithms, algo)
	}
	sort.Slice(algorithms, func(i, j int) bool { return algorithms[i] < algorithms[j] })
	for _, algo := range algorithms {
		fmt.Fprintf(w, "  %s:     %s\n", algo, report.Checksums[algo])
	}
	return nil
}

// jsonReport is the wire shape of a report: the format identity is
// flattened into its catalog fields.
type jsonReport struct {
	Path      string                       `json:"path"`
	Size      int64                        `json:"size"`
	Format    string                       `json:"format"`
	ShortName string                       `json:"short_name,omitempty"`
	MediaType string                       `json:"media_type"`
	Extension string                       `json:"extension"`
	Kind      string                       `json:"kind"`
	Checksums map[ChecksumAlgorithm]string `json:"checksums,omitempty"`
}

// jsonFormatter prints a report as a single JSON object per line.
type jsonFormatter struct{}

func (jsonFormatter) Format(w io.Writer, report *Report) error {
	format := report.Format
	return json.NewEncoder(w).Encode(jsonReport{
		Path:      report.Path,
		Size:      report.Size,
		Format:    format.Name(),
		ShortName: format.ShortName(),
		MediaType: format.MediaType(),
		Extension: format.Extension(),
		Kind:      format.Kind().String(),
		Checksums: report.Checksums,
	})
}
