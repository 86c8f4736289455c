package presenter

import (
	"context"
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// PlainData is implemented by values that convert themselves into plain
// nested data: presenters, pages, [*Map], or any user type.
type PlainData interface {
	ToPlainData(ctx context.Context) (any, error)
}

// Invoker runs deferred producers. It receives the key being resolved so
// implementations can scope or instrument the call.
type Invoker interface {
	Invoke(ctx context.Context, key string, fn Producer) (any, error)
}

// InvokerFunc adapts a function to [Invoker].
type InvokerFunc func(ctx context.Context, key string, fn Producer) (any, error)

// Invoke calls f(ctx, key, fn).
func (f InvokerFunc) Invoke(ctx context.Context, key string, fn Producer) (any, error) {
	return f(ctx, key, fn)
}

var directInvoker = InvokerFunc(func(ctx context.Context, _ string, fn Producer) (any, error) {
	return fn(ctx)
})

// Get resolves the presenter.
//
// The result is nil when there is no data, a [*Map] for a single item or a
// page, and a []any of element results for a sequence. Only and Except keys
// that are not declared yield an [*InvalidKeysError].
func (p *Presenter[T]) Get(ctx context.Context) (any, error) {
	return p.resolve(ctx, true)
}

// All resolves every catalog field without applying Only, Except or With.
// Keys are not validated.
func (p *Presenter[T]) All(ctx context.Context) (any, error) {
	return p.resolve(ctx, false)
}

// ToPlainData is equivalent to Get. It lets a presenter be used as a field
// value of another presenter.
func (p *Presenter[T]) ToPlainData(ctx context.Context) (any, error) {
	if p == nil {
		return nil, nil
	}
	return p.Get(ctx)
}

func (p *Presenter[T]) resolve(ctx context.Context, selecting bool) (any, error) {
	if p.err != nil {
		return nil, p.err
	}
	var (
		out any
		err error
	)
	switch p.src.kind {
	case sourceAbsent:
		return nil, nil
	case sourceSequence:
		out, err = p.fanout(ctx, p.src.items, selecting)
	case sourcePaginated:
		out, err = p.paginate(ctx, selecting)
	default:
		if isNil(p.src.item) {
			return nil, nil
		}
		out, err = p.present(ctx, selecting)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Presenter[T]) present(ctx context.Context, selecting bool) (*Map, error) {
	catalog := p.def.Fields(p.src.item)
	if !selecting {
		return p.evaluate(ctx, catalog)
	}
	if err := p.validate(catalog); err != nil {
		return nil, err
	}
	return p.evaluate(ctx, p.filter(catalog))
}

// evaluate runs deferred producers and flattens every value into plain data.
func (p *Presenter[T]) evaluate(ctx context.Context, fields *Fields) (*Map, error) {
	out := NewMap()
	for k, fld := range fields.All() {
		v := fld.value
		if fld.producer != nil {
			p.logger.Debug("presenter deferred field", zap.String("key", k))
			var err error
			if v, err = p.invoker.Invoke(ctx, k, fld.producer); err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
		}
		pv, err := plain(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out.Set(k, pv)
	}
	return out, nil
}

var plainDataType = reflect.TypeFor[PlainData]()

// plain converts v into plain data, recursing through [PlainData] values and
// through slices and string-keyed maps that may hold them. A nil PlainData
// pointer is no data.
func plain(ctx context.Context, v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case PlainData:
		if isNil(t) {
			return nil, nil
		}
		return t.ToPlainData(ctx)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			pv, err := plain(ctx, e)
			if err != nil {
				return nil, err
			}
			out[i] = pv
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			pv, err := plain(ctx, e)
			if err != nil {
				return nil, err
			}
			out[k] = pv
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if !mayHoldPlainData(rv.Type().Elem()) || (rv.Kind() == reflect.Slice && rv.IsNil()) {
			return v, nil
		}
		out := make([]any, rv.Len())
		for i := range rv.Len() {
			pv, err := plain(ctx, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = pv
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String || !mayHoldPlainData(rv.Type().Elem()) || rv.IsNil() {
			return v, nil
		}
		out := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			pv, err := plain(ctx, it.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[it.Key().String()] = pv
		}
		return out, nil
	}
	return v, nil
}

func mayHoldPlainData(t reflect.Type) bool {
	return t.Kind() == reflect.Interface || t.Implements(plainDataType)
}
