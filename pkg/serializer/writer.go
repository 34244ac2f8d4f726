// Package serializer renders reports and other documents to JSON, YAML, or a
// flattened table, writing to stdout or a file.
package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format identifies an output format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"

	// StdoutURI is the special output path meaning stdout.
	StdoutURI = "-"
)

// IsUnknown reports whether the format is not one of the supported set.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// Writer serializes documents in a fixed format to an io.Writer.
type Writer struct {
	format Format
	out    io.Writer
	path   string // non-empty when writing to a file opened per call
}

// NewWriter creates a Writer for the given format and destination. Unknown
// formats fall back to JSON.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Writer{format: format, out: out}
}

// NewFileWriterOrStdout creates a Writer targeting the given file path, or
// stdout when the path is empty or "-".
func NewFileWriterOrStdout(format Format, path string) *Writer {
	if path == "" || path == StdoutURI {
		return NewWriter(format, os.Stdout)
	}
	w := NewWriter(format, nil)
	w.path = path
	return w
}

// Serialize writes the document in the configured format.
func (w *Writer) Serialize(ctx context.Context, doc any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	out := w.out
	if w.path != "" {
		f, err := os.Create(w.path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return writeTable(out, doc)
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		return nil
	}
}

// writeTable renders the document as a two-column FIELD/VALUE table with
// nested structure flattened into dotted keys.
func writeTable(out io.Writer, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to flatten document: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("failed to flatten document: %w", err)
	}

	rows := map[string]string{}
	flatten("", generic, rows)

	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", k, rows[k])
	}
	return tw.Flush()
}

func flatten(prefix string, v any, rows map[string]string) {
	switch v := v.(type) {
	case map[string]any:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, rows)
		}
	case []any:
		for i, child := range v {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), child, rows)
		}
	case nil:
		rows[prefix] = "null"
	case string:
		rows[prefix] = v
	default:
		rows[prefix] = strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
