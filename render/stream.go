package render

import (
	"fmt"
	"io"
	"iter"
)

// WriteIter encodes elements from an iterator as they arrive. JSON streams
// the elements as an array, JSONL writes one line per element, and CSV/TSV
// write the header with the first element that has rows. Other formats
// collect the elements first.
func WriteIter(w io.Writer, f Format, seq iter.Seq[any], opts ...Option) error {
	cfg := newConfig(opts)
	switch f {
	case JSON:
		return streamJSON(w, seq, cfg)
	case JSONL:
		return streamJSONL(w, seq, cfg)
	case CSV, TSV:
		return streamDelimited(w, f, seq, cfg)
	case YAML, Table, Markdown:
		return Write(w, f, collect(seq), opts...)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteChan encodes elements from a channel. It is a thin wrapper around
// [WriteIter].
func WriteChan(w io.Writer, f Format, ch <-chan any, opts ...Option) error {
	return WriteIter(w, f, chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func collect(seq iter.Seq[any]) []any {
	items := []any{}
	for item := range seq {
		items = append(items, item)
	}
	return items
}

func streamJSON(w io.Writer, seq iter.Seq[any], cfg config) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	cfg.indent = ""
	enc := newJSONEncoder(w, cfg)
	first := true
	for item := range seq {
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

func streamJSONL(w io.Writer, seq iter.Seq[any], cfg config) error {
	cfg.indent = ""
	enc := newJSONEncoder(w, cfg)
	for item := range seq {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

// streamDelimited writes the header with the first element that yields rows,
// then only rows. An element may be a row, a batch of rows or a page; nil
// elements yield nothing. Later rows use the first header's columns.
func streamDelimited(w io.Writer, f Format, seq iter.Seq[any], cfg config) error {
	header := false
	for item := range seq {
		g, err := tabulate(f, item, cfg)
		if err != nil {
			return err
		}
		if len(g.rows) == 0 {
			continue
		}
		if !header {
			header = true
			cfg.columns = g.header
			if err := writeDelimitedRow(w, f, g.header, cfg); err != nil {
				return err
			}
		}
		for _, row := range g.rows {
			if err := writeDelimitedRow(w, f, row, cfg); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeDelimitedRow(w io.Writer, f Format, row []string, cfg config) error {
	if f == TSV {
		return writeTSVRow(w, row)
	}
	return writeCSVRow(w, row, cfg)
}
