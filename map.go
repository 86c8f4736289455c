package presenter

import (
	"bytes"
	"context"
	"iter"
	"maps"
	"slices"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Map is an ordered, string-keyed map of plain data. Keys keep insertion
// order; setting an existing key replaces its value in place.
//
// Map is the representation the resolution engine produces for a single item
// and for a page, and it encodes to JSON and YAML in key order.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{values: map[string]any{}}
}

// MapOf builds a map from alternating key/value arguments. Non-string keys and
// a trailing key without a value are ignored.
func MapOf(kv ...any) *Map {
	m := NewMap()
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m.Set(k, kv[i+1])
		}
	}
	return m
}

// Set stores v under key and returns m for chaining.
func (m *Map) Set(key string, v any) *Map {
	if m.values == nil {
		m.values = map[string]any{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
	return m
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key, keeping the order of the remaining keys.
func (m *Map) Delete(key string) *Map {
	if _, ok := m.values[key]; !ok {
		return m
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
	return m
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// All iterates over the entries in key order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of m.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	return &Map{keys: slices.Clone(m.keys), values: maps.Clone(m.values)}
}

// Merge merges src into m recursively and returns m. When both sides hold a
// map under the same key the two are merged key by key; otherwise the value
// from src wins. Keys only present in src are appended in src order.
func (m *Map) Merge(src *Map) *Map {
	for k, v := range src.All() {
		if cur, ok := m.Get(k); ok {
			dst, dok := mapLike(cur)
			add, aok := mapLike(v)
			if dok && aok {
				m.Set(k, dst.Clone().Merge(add))
				continue
			}
		}
		m.Set(k, v)
	}
	return m
}

// Std converts m into nested builtin maps and slices. Key order is lost.
func (m *Map) Std() map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m.keys))
	for k, v := range m.All() {
		out[k] = std(v)
	}
	return out
}

func std(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.Std()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = std(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = std(e)
		}
		return out
	default:
		return v
	}
}

// ToPlainData resolves every value of m into plain data.
func (m *Map) ToPlainData(ctx context.Context) (any, error) {
	if m == nil {
		return nil, nil
	}
	out := NewMap()
	for k, v := range m.All() {
		pv, err := plain(ctx, v)
		if err != nil {
			return nil, err
		}
		out.Set(k, pv)
	}
	return out, nil
}

// MarshalJSON encodes m as a JSON object in key order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes m as a YAML mapping in key order.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if m == nil {
		return node, nil
	}
	for k, v := range m.All() {
		var key, val yaml.Node
		if err := key.Encode(k); err != nil {
			return nil, err
		}
		if err := val.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

// mapLike reports whether v is a map that can take part in a recursive merge.
// Builtin string-keyed maps are converted with their keys sorted.
func mapLike(v any) (*Map, bool) {
	switch t := v.(type) {
	case *Map:
		return t, t != nil
	case map[string]any:
		m := NewMap()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			m.Set(k, t[k])
		}
		return m, true
	default:
		return nil, false
	}
}
