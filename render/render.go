// Package render encodes plain data produced by presenters.
//
// Any value works with JSON and YAML; [*presenter.Map] keeps its key order in
// both. The tabular formats (CSV, TSV, Table, Markdown) take rows: a []any of
// maps, a single map, or a page map whose "data" entry holds the rows. The
// first row's keys become the header unless [WithColumns] is given.
//
//	out, _ := presenter.Collection(Posts, posts).Only("id", "title").Get(ctx)
//	render.Write(os.Stdout, render.Table, out)
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedData   = errors.New("unsupported data")
)

// Format represents an output format.
type Format string

const (
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Table    Format = "table"
	Markdown Format = "markdown"
)

var formats = []Format{JSON, JSONL, YAML, CSV, TSV, Table, Markdown}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
)

// Option configures rendering.
type Option func(*config)

type config struct {
	indent    string
	border    BorderStyle
	delimiter rune
	columns   []string
}

// WithIndent sets the JSON indent string, and the YAML indent width as its
// length. Without it JSON is compact and YAML uses its default indent.
func WithIndent(indent string) Option {
	return func(c *config) { c.indent = indent }
}

// WithBorder sets the table border style. Default: BorderRounded.
func WithBorder(b BorderStyle) Option {
	return func(c *config) { c.border = b }
}

// WithDelimiter sets the CSV field delimiter. Default: comma.
func WithDelimiter(r rune) Option {
	return func(c *config) { c.delimiter = r }
}

// WithColumns selects and orders the columns of tabular formats.
func WithColumns(cols ...string) Option {
	return func(c *config) { c.columns = cols }
}

func newConfig(opts []Option) config {
	c := config{border: BorderRounded, delimiter: ','}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Write encodes data in format f and writes it to w.
func Write(w io.Writer, f Format, data any, opts ...Option) error {
	cfg := newConfig(opts)
	switch f {
	case JSON:
		return writeJSON(w, data, cfg)
	case JSONL:
		return writeJSONL(w, data, cfg)
	case YAML:
		return writeYAML(w, data, cfg)
	case CSV:
		return writeCSV(w, data, cfg)
	case TSV:
		return writeTSV(w, data, cfg)
	case Table:
		return writeTable(w, data, cfg)
	case Markdown:
		return writeMarkdown(w, data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal encodes data in format f and returns the bytes.
func Marshal(f Format, data any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, data, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
