package render

import (
	"io"

	"github.com/goccy/go-json"
)

func newJSONEncoder(w io.Writer, cfg config) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if cfg.indent != "" {
		enc.SetIndent("", cfg.indent)
	}
	return enc
}

func writeJSON(w io.Writer, data any, cfg config) error {
	return newJSONEncoder(w, cfg).Encode(data)
}

// writeJSONL writes one JSON document per row. Data that is not a list is
// written as a single line.
func writeJSONL(w io.Writer, data any, cfg config) error {
	items, ok := rowsOf(data)
	if !ok {
		items = []any{data}
	}
	cfg.indent = ""
	enc := newJSONEncoder(w, cfg)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}
