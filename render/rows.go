package render

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-json"

	"github.com/bjaus/presenter"
)

// grid is the tabular view of plain data.
type grid struct {
	header  []string
	rows    [][]string
	numeric []bool
}

// rowsOf extracts the rows of data: the elements of a sequence, the items of
// a page, or a single map.
func rowsOf(data any) ([]any, bool) {
	switch t := data.(type) {
	case nil:
		return nil, true
	case []any:
		return t, true
	case *presenter.Map:
		if items, ok := pageItems(t); ok {
			return items, true
		}
		return []any{t}, true
	case map[string]any:
		return []any{t}, true
	default:
		return nil, false
	}
}

// pageItems returns the items of a page representation.
func pageItems(m *presenter.Map) ([]any, bool) {
	if !m.Has("current_page") {
		return nil, false
	}
	d, _ := m.Get("data")
	items, ok := d.([]any)
	return items, ok
}

func asMap(row any) (*presenter.Map, bool) {
	switch t := row.(type) {
	case *presenter.Map:
		return t, t != nil
	case map[string]any:
		m := presenter.NewMap()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			m.Set(k, t[k])
		}
		return m, true
	default:
		return nil, false
	}
}

func tabulate(f Format, data any, cfg config) (grid, error) {
	items, ok := rowsOf(data)
	if !ok {
		return grid{}, fmt.Errorf("%w: format %q requires a map or a list of maps, got %T", ErrUnsupportedData, f, data)
	}
	if len(items) == 0 {
		return grid{}, nil
	}
	rows := make([]*presenter.Map, len(items))
	for i, item := range items {
		m, ok := asMap(item)
		if !ok {
			return grid{}, fmt.Errorf("%w: format %q requires rows of maps, row %d is %T", ErrUnsupportedData, f, i, item)
		}
		rows[i] = m
	}

	g := grid{header: cfg.columns}
	if len(g.header) == 0 {
		g.header = rows[0].Keys()
	}
	g.numeric = make([]bool, len(g.header))
	for i := range g.numeric {
		g.numeric[i] = true
	}
	seen := make([]bool, len(g.header))
	g.rows = make([][]string, len(rows))
	for r, m := range rows {
		cells := make([]string, len(g.header))
		for i, col := range g.header {
			v, _ := m.Get(col)
			cells[i] = cellString(v)
			if v != nil {
				seen[i] = true
				g.numeric[i] = g.numeric[i] && isNumber(v)
			}
		}
		g.rows[r] = cells
	}
	for i := range g.numeric {
		g.numeric[i] = g.numeric[i] && seen[i]
	}
	return g, nil
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case *presenter.Map, []any, map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return true
	default:
		return false
	}
}
