package presenter

import (
	"context"
	"iter"
	"slices"
)

// Producer computes a field value on demand. It runs only when its key
// survives filtering, and at most once per resolution.
type Producer func(ctx context.Context) (any, error)

// Field is a catalog entry: either an eager value or a deferred producer.
type Field struct {
	value    any
	producer Producer
}

// Eager returns a field holding v as is.
func Eager(v any) Field { return Field{value: v} }

// Deferred returns a field whose value is computed by fn during resolution.
func Deferred(fn Producer) Field { return Field{producer: fn} }

// Lazy returns a deferred field for a computation that cannot fail and does
// not need the context.
func Lazy(fn func() any) Field {
	return Deferred(func(context.Context) (any, error) { return fn(), nil })
}

// IsDeferred reports whether the field is computed during resolution.
func (f Field) IsDeferred() bool { return f.producer != nil }

// Fields is the ordered field catalog of a presenter.
type Fields struct {
	keys    []string
	entries map[string]Field
}

// NewFields returns an empty catalog.
func NewFields() *Fields {
	return &Fields{entries: map[string]Field{}}
}

// Set adds an eager field. A [Field] value is stored as given.
func (f *Fields) Set(key string, v any) *Fields {
	if fld, ok := v.(Field); ok {
		return f.Add(key, fld)
	}
	return f.Add(key, Eager(v))
}

// Defer adds a deferred field.
func (f *Fields) Defer(key string, fn Producer) *Fields {
	return f.Add(key, Deferred(fn))
}

// Lazy adds a deferred field backed by fn.
func (f *Fields) Lazy(key string, fn func() any) *Fields {
	return f.Add(key, Lazy(fn))
}

// Add stores fld under key. An existing key keeps its position.
func (f *Fields) Add(key string, fld Field) *Fields {
	if f.entries == nil {
		f.entries = map[string]Field{}
	}
	if _, ok := f.entries[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.entries[key] = fld
	return f
}

// Merge adds every field of other, in order, and returns f.
func (f *Fields) Merge(other *Fields) *Fields {
	for k, fld := range other.All() {
		f.Add(k, fld)
	}
	return f
}

// Has reports whether key is declared.
func (f *Fields) Has(key string) bool {
	if f == nil {
		return false
	}
	_, ok := f.entries[key]
	return ok
}

// Len returns the number of declared fields.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Keys returns the declared keys in order.
func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}
	return slices.Clone(f.keys)
}

// All iterates over the fields in declaration order.
func (f *Fields) All() iter.Seq2[string, Field] {
	return func(yield func(string, Field) bool) {
		if f == nil {
			return
		}
		for _, k := range f.keys {
			if !yield(k, f.entries[k]) {
				return
			}
		}
	}
}

// Definition declares the field catalog of a concrete presenter. Fields is
// called on every resolution and must only read the item.
type Definition[T any] interface {
	Fields(item T) *Fields
}

// DefinitionFunc adapts a function to [Definition].
type DefinitionFunc[T any] func(item T) *Fields

// Fields calls f(item).
func (f DefinitionFunc[T]) Fields(item T) *Fields { return f(item) }

// Preset configures a presenter, typically through Only, Except or With, and
// returns it.
type Preset[T any] func(p *Presenter[T]) *Presenter[T]

// Presetter is implemented by definitions that offer named presets.
type Presetter[T any] interface {
	Presets() map[string]Preset[T]
}

// WithFunc produces supplemental fields for an item.
type WithFunc[T any] func(item T) *Fields

// Relations is implemented by items that track which relations are loaded.
type Relations interface {
	RelationLoaded(name string) bool
	Relation(name string) any
}

// WhenLoaded returns the named relation of item when item implements
// [Relations] and reports the relation as loaded. Otherwise it returns nil,
// which presents as no data.
func WhenLoaded(item any, name string) any {
	r, ok := item.(Relations)
	if !ok || isNil(item) || !r.RelationLoaded(name) {
		return nil
	}
	return r.Relation(name)
}

// None is the item type of standalone presenters whose fields do not depend
// on any data.
type None struct{}
