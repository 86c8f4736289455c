package presenter

import (
	"fmt"
	"iter"
	"reflect"

	"go.uber.org/zap"
)

type sourceKind int

const (
	sourceAbsent sourceKind = iota
	sourceSingle
	sourceSequence
	sourcePaginated
)

func (k sourceKind) String() string {
	switch k {
	case sourceSingle:
		return "single"
	case sourceSequence:
		return "sequence"
	case sourcePaginated:
		return "paginated"
	default:
		return "absent"
	}
}

// source is fixed at construction; exactly one of item, items or page is
// meaningful, as selected by kind.
type source[T any] struct {
	kind  sourceKind
	item  T
	items []T
	page  Paginator[T]
}

// Sequence is an ordered collection of items.
type Sequence[T any] interface {
	All() iter.Seq[T]
}

// Presenter wraps a source and produces filtered plain data from it.
//
// A Presenter is a short-lived builder: construct it, chain configuration
// calls (each returns the same instance), then call [Presenter.Get] once.
// It is not safe for concurrent use.
type Presenter[T any] struct {
	def     Definition[T]
	src     source[T]
	only    []string
	except  []string
	with    *Fields
	withFns []WithFunc[T]
	appends *Map
	invoker Invoker
	logger  *zap.Logger
	err     error
}

func newPresenter[T any](def Definition[T], src source[T]) *Presenter[T] {
	return &Presenter[T]{
		def:     def,
		src:     src,
		invoker: directInvoker,
		logger:  zap.NewNop(),
	}
}

// New returns a presenter that wraps nothing. It resolves to no data.
func New[T any](def Definition[T]) *Presenter[T] {
	return newPresenter(def, source[T]{kind: sourceAbsent})
}

// Make returns a presenter for a single item. A nil item resolves to no data.
func Make[T any](def Definition[T], item T) *Presenter[T] {
	return newPresenter(def, source[T]{kind: sourceSingle, item: item})
}

// Collection returns a presenter for a sequence or a page of items.
//
// src may be nil (no data), a [Paginator], a []T, an iter.Seq[T], a
// [Sequence], or a single T, which is wrapped as a sequence of one. When T is
// an interface type, any slice or array whose elements are T is a sequence,
// so Collection[any] iterates a []int. Any other value records
// [ErrUnsupportedSource], returned by Get.
func Collection[T any](def Definition[T], src any) *Presenter[T] {
	s, err := classify[T](src)
	p := newPresenter(def, s)
	p.err = err
	return p
}

func classify[T any](src any) (source[T], error) {
	if isNil(src) {
		return source[T]{kind: sourceAbsent}, nil
	}
	switch v := src.(type) {
	case Paginator[T]:
		return source[T]{kind: sourcePaginated, page: v}, nil
	case []T:
		return source[T]{kind: sourceSequence, items: v}, nil
	case iter.Seq[T]:
		return source[T]{kind: sourceSequence, items: collect(v)}, nil
	case Sequence[T]:
		return source[T]{kind: sourceSequence, items: collect(v.All())}, nil
	}
	if items, ok, err := reflectItems[T](src); ok {
		if err != nil {
			return source[T]{kind: sourceAbsent}, err
		}
		return source[T]{kind: sourceSequence, items: items}, nil
	}
	if v, ok := src.(T); ok {
		return source[T]{kind: sourceSequence, items: []T{v}}, nil
	}
	return source[T]{kind: sourceAbsent}, fmt.Errorf("%w: %T is not a sequence of %s", ErrUnsupportedSource, src, reflect.TypeFor[T]())
}

// reflectItems converts the elements of any slice or array into items when T
// is an interface type, so Collection[any] accepts []int as well as []any.
// ok is false when src is not a slice or array or T is not an interface.
func reflectItems[T any](src any) (items []T, ok bool, err error) {
	if reflect.TypeFor[T]().Kind() != reflect.Interface {
		return nil, false, nil
	}
	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false, nil
	}
	items = make([]T, rv.Len())
	for i := range rv.Len() {
		e := rv.Index(i).Interface()
		if e == nil {
			continue
		}
		item, isT := e.(T)
		if !isT {
			return nil, true, fmt.Errorf("%w: element %d of %T is not a %s", ErrUnsupportedSource, i, src, reflect.TypeFor[T]())
		}
		items[i] = item
	}
	return items, true, nil
}

func collect[T any](seq iter.Seq[T]) []T {
	items := []T{}
	for item := range seq {
		items = append(items, item)
	}
	return items
}

// isNil reports whether v is nil or a nil pointer, map, slice, interface,
// func or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// Using sets the invoker that runs deferred producers. Children created for
// sequence elements share it.
func (p *Presenter[T]) Using(inv Invoker) *Presenter[T] {
	if inv == nil {
		inv = directInvoker
	}
	p.invoker = inv
	return p
}

// Logger sets the logger used for debug events.
func (p *Presenter[T]) Logger(l *zap.Logger) *Presenter[T] {
	if l == nil {
		l = zap.NewNop()
	}
	p.logger = l
	return p
}

// Err returns the first configuration error recorded on p, if any. The same
// error is returned by Get and All.
func (p *Presenter[T]) Err() error { return p.err }
