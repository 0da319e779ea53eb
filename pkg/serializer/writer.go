// Package serializer renders structured values to output destinations.
//
// The central type is Writer, which encodes a value to an io.Writer in
// one of the supported formats. Construction helpers cover the common
// destinations: NewStdoutWriter for standard output and
// NewFileWriterOrStdout for a path that may also mean stdout.
package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format identifies an output encoding.
type Format string

const (
	// FormatText renders the value's own plain-text form when it
	// provides one, falling back to the table rendering.
	FormatText Format = "text"

	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"

	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"

	// FormatTable renders a two-column FIELD/VALUE table with
	// flattened dotted keys.
	FormatTable Format = "table"
)

// IsUnknown reports whether the format is none of the supported ones.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatTable:
		return false
	}
	return true
}

// SupportedFormats returns the names of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// FormatFromPath infers an output format from a file extension.
// Unrecognized extensions (including stdout paths) map to FormatText.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatText
}

// Serializer writes structured values to a configured destination.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is the interface for serializers that hold a closeable
// destination.
type Closer interface {
	Close() error
}

// TextRenderer is implemented by values that carry their own
// plain-text rendering.
type TextRenderer interface {
	RenderText() string
}

// Writer serializes values to an io.Writer in a fixed format.
type Writer struct {
	format Format
	out    io.Writer
	file   *os.File
	closed bool
}

var (
	_ Serializer = (*Writer)(nil)
	_ Closer     = (*Writer)(nil)
)

// NewWriter creates a writer that serializes to w in the given format.
// Unknown formats fall back to JSON; a nil writer falls back to stdout.
func NewWriter(format Format, w io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	if w == nil {
		w = os.Stdout
	}
	return &Writer{format: format, out: w}
}

// NewStdoutWriter creates a writer that serializes to standard output.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a serializer writing to the file at
// path, creating or truncating it. A path that is empty, whitespace,
// or StdoutURI means stdout. Callers should Close the returned
// serializer; closing a stdout writer is a no-op.
func NewFileWriterOrStdout(format Format, path string) (*Writer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}

	w := NewWriter(format, f)
	w.file = f
	return w, nil
}

// Close closes the underlying file if there is one. It is safe to call
// multiple times and never closes stdout.
func (w *Writer) Close() error {
	if w.closed || w.file == nil {
		w.closed = true
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// Serialize writes v to the destination in the writer's format.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.format {
	case FormatYAML:
		return w.serializeYAML(v)
	case FormatTable:
		return w.serializeTable(v)
	case FormatText:
		return w.serializeText(v)
	default:
		return w.serializeJSON(v)
	}
}

func (w *Writer) serializeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize to json: %w", err)
	}

	data = append(data, '\n')
	if _, err := w.out.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (w *Writer) serializeYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize to yaml: %w", err)
	}

	if _, err := w.out.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (w *Writer) serializeText(v any) error {
	if tr, ok := v.(TextRenderer); ok {
		if _, err := io.WriteString(w.out, tr.RenderText()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	return w.serializeTable(v)
}

func (w *Writer) serializeTable(v any) error {
	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, row := range flatten("", reflect.ValueOf(v)) {
		fmt.Fprintf(tw, "%s\t%s\n", row.key, row.value)
	}
	return tw.Flush()
}

type tableRow struct {
	key   string
	value string
}

// flatten walks a value depth-first and produces one row per leaf,
// joining nested field names with dots and slice positions with [i].
func flatten(prefix string, val reflect.Value) []tableRow {
	if !val.IsValid() {
		return []tableRow{{prefix, "<nil>"}}
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return []tableRow{{prefix, "<nil>"}}
		}
		return flatten(prefix, val.Elem())

	case reflect.Struct:
		var rows []tableRow
		t := val.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			rows = append(rows, flatten(joinKey(prefix, f.Name), val.Field(i))...)
		}
		if len(rows) == 0 {
			return []tableRow{{prefix, "<empty>"}}
		}
		return rows

	case reflect.Map:
		if val.Len() == 0 {
			return []tableRow{{prefix, "<empty>"}}
		}
		keys := make([]string, 0, val.Len())
		entries := make(map[string]reflect.Value, val.Len())
		for _, k := range val.MapKeys() {
			name := fmt.Sprintf("%v", k.Interface())
			keys = append(keys, name)
			entries[name] = val.MapIndex(k)
		}
		sort.Strings(keys)
		var rows []tableRow
		for _, name := range keys {
			rows = append(rows, flatten(joinKey(prefix, name), entries[name])...)
		}
		return rows

	case reflect.Slice, reflect.Array:
		if val.Len() == 0 {
			return []tableRow{{prefix, "<empty>"}}
		}
		var rows []tableRow
		for i := 0; i < val.Len(); i++ {
			rows = append(rows, flatten(fmt.Sprintf("%s[%d]", prefix, i), val.Index(i))...)
		}
		return rows

	default:
		return []tableRow{{prefix, fmt.Sprintf("%v", val.Interface())}}
	}
}

func joinKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
