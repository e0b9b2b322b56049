// Package csvconv converts CSV input to JSON or YAML documents.
//
// With a header row every record becomes an object whose keys keep the
// column order of the header. Without one, every record becomes an array
// of strings. Values are never type-converted.
package csvconv

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"

	"gopkg.in/yaml.v3"
)

// Format selects the output document type.
type Format int

const (
	JSON Format = iota
	YAML
)

// Options configures a conversion.
type Options struct {
	Format    Format
	Delimiter rune
	Header    bool
}

// DefaultOptions converts comma-separated input with a header row to JSON.
func DefaultOptions() Options {
	return Options{Format: JSON, Delimiter: ',', Header: true}
}

// Convert reads all of r and writes the converted document to w.
func Convert(r io.Reader, w io.Writer, opts Options) error {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("%w: parsing csv: %v", kerrors.ErrInvalidFormat, err)
	}

	var doc any
	if opts.Header && len(rows) > 0 {
		header := rows[0]
		records := make([]record, 0, len(rows)-1)
		for _, row := range rows[1:] {
			records = append(records, record{keys: header, values: row})
		}
		doc = records
	} else {
		if rows == nil {
			rows = [][]string{}
		}
		doc = rows
	}

	switch opts.Format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: unknown output format %d", kerrors.ErrInvalidFormat, int(opts.Format))
	}
}

// record is one CSV row keyed by header, marshalled in column order.
type record struct {
	keys   []string
	values []string
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, k := range r.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.values[i]},
		)
	}
	return node, nil
}

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// Extension is the file extension used for default output names.
func (f Format) Extension() string {
	return f.String()
}

func (f *Format) Set(s string) error {
	switch strings.ToLower(s) {
	case "json":
		*f = JSON
	case "yaml", "yml":
		*f = YAML
	default:
		return fmt.Errorf("%w: %q is not an output format (expected json or yaml)", kerrors.ErrInvalidFormat, s)
	}
	return nil
}

func (f *Format) Type() string { return "format" }

func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Format) UnmarshalText(text []byte) error { return f.Set(string(text)) }
