package presenter

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// child returns an independent presenter for one element. Selection state is
// copied, and deferred With functions are applied to the element when
// selecting.
func (p *Presenter[T]) child(item T, selecting bool) *Presenter[T] {
	c := newPresenter(p.def, source[T]{kind: sourceSingle, item: item})
	c.only = slices.Clone(p.only)
	c.except = slices.Clone(p.except)
	c.invoker = p.invoker
	c.logger = p.logger
	if !selecting {
		return c
	}
	for _, fn := range p.withFns {
		c.With(fn)
	}
	return c
}

func (p *Presenter[T]) fanout(ctx context.Context, items []T, selecting bool) ([]any, error) {
	p.logger.Debug("presenter fanout", zap.Int("items", len(items)), zap.Stringer("source", p.src.kind))
	out := make([]any, 0, len(items))
	for i, item := range items {
		v, err := p.child(item, selecting).resolve(ctx, selecting)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// paginate presents the page items, asks the page for its own
// representation around them and merges the appended entries into it.
func (p *Presenter[T]) paginate(ctx context.Context, selecting bool) (*Map, error) {
	data, err := p.fanout(ctx, p.src.page.Items(), selecting)
	if err != nil {
		return nil, err
	}
	out := p.src.page.ToMap(data)
	if out == nil {
		out = NewMap()
	}
	if p.appends.Len() == 0 {
		return out, nil
	}
	extra, err := p.appends.ToPlainData(ctx)
	if err != nil {
		return nil, fmt.Errorf("appends: %w", err)
	}
	return out.Merge(extra.(*Map)), nil
}
