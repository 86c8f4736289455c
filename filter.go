package presenter

import (
	"maps"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Only restricts the catalog to keys. Repeated calls accumulate.
func (p *Presenter[T]) Only(keys ...string) *Presenter[T] {
	p.only = addKeys(p.only, keys)
	return p
}

// ForceOnly replaces any previously given Only keys.
func (p *Presenter[T]) ForceOnly(keys ...string) *Presenter[T] {
	p.only = addKeys(nil, keys)
	return p
}

// Except removes keys from the catalog. Repeated calls accumulate.
func (p *Presenter[T]) Except(keys ...string) *Presenter[T] {
	p.except = addKeys(p.except, keys)
	return p
}

// ForceExcept replaces any previously given Except keys.
func (p *Presenter[T]) ForceExcept(keys ...string) *Presenter[T] {
	p.except = addKeys(nil, keys)
	return p
}

// With adds supplemental fields produced by fn. Supplemental fields are not
// subject to Only or Except and override catalog fields with the same key.
//
// For a single non-nil item fn is called immediately. For sequences and pages
// it is called once per element during fan-out.
func (p *Presenter[T]) With(fn WithFunc[T]) *Presenter[T] {
	if fn == nil {
		return p
	}
	if p.src.kind == sourceSingle && !isNil(p.src.item) {
		if p.with == nil {
			p.with = NewFields()
		}
		p.with.Merge(fn(p.src.item))
		return p
	}
	p.withFns = append(p.withFns, fn)
	return p
}

// Preset applies the preset registered under name by the presenter's
// definition. Names match when their method names do, so "Summary" finds a
// preset registered as "summary". An unknown name records an
// [*UnknownPresetError].
func (p *Presenter[T]) Preset(name string) *Presenter[T] {
	if p.err != nil {
		return p
	}
	if fn := p.lookupPreset(name); fn != nil {
		p.logger.Debug("presenter preset", zap.String("preset", name))
		if out := fn(p); out != nil {
			return out
		}
		return p
	}
	p.err = &UnknownPresetError{Name: name, Method: presetMethod(name)}
	p.logger.Debug("presenter preset not found", zap.String("preset", name))
	return p
}

// Appends sets extra top-level entries merged recursively into the output of
// a paginated presenter. It has no effect on other sources.
func (p *Presenter[T]) Appends(m *Map) *Presenter[T] {
	p.appends = m
	return p
}

func (p *Presenter[T]) lookupPreset(name string) Preset[T] {
	ps, ok := p.def.(Presetter[T])
	if !ok {
		return nil
	}
	presets := ps.Presets()
	if fn := presets[name]; fn != nil {
		return fn
	}
	method := presetMethod(name)
	for _, k := range slices.Sorted(maps.Keys(presets)) {
		if presetMethod(k) == method {
			return presets[k]
		}
	}
	return nil
}

// presetMethod returns the conventional method name for a preset, e.g.
// presetSummary. Casers are stateful, so one is built per call.
func presetMethod(name string) string {
	return "preset" + cases.Title(language.Und, cases.NoLower).String(name)
}

func addKeys(dst, keys []string) []string {
	for _, k := range keys {
		if !slices.Contains(dst, k) {
			dst = append(dst, k)
		}
	}
	return dst
}

// validate checks that every Only and Except key names a catalog or
// supplemental field. Only is checked first.
func (p *Presenter[T]) validate(catalog *Fields) error {
	for _, sel := range []struct {
		method string
		keys   []string
	}{
		{"only", p.only},
		{"except", p.except},
	} {
		var invalid []string
		for _, k := range sel.keys {
			if !catalog.Has(k) && !p.with.Has(k) {
				invalid = append(invalid, k)
			}
		}
		if len(invalid) > 0 {
			return &InvalidKeysError{Method: sel.method, Keys: invalid}
		}
	}
	return nil
}

// filter applies Only and Except to the catalog, then merges the
// supplemental fields. Surviving catalog keys keep their order.
func (p *Presenter[T]) filter(catalog *Fields) *Fields {
	out := NewFields()
	for k, fld := range catalog.All() {
		if len(p.only) > 0 && !slices.Contains(p.only, k) {
			continue
		}
		if slices.Contains(p.except, k) {
			continue
		}
		out.Add(k, fld)
	}
	return out.Merge(p.with)
}
