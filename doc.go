// Package presenter turns records into plain, serializable key/value data.
//
// A presenter wraps a source (nothing, a single item, a sequence of items or
// a page of items) and resolves it into plain data: a [*Map] for an item or a
// page, a []any for a sequence, or nil when there is no data. The fields are
// declared by a [Definition]; callers narrow them per request.
//
// # Declaring Fields
//
// A [Definition] returns the ordered field catalog for an item. Values are
// either eager or deferred; deferred producers only run when their key is
// selected:
//
//	var Posts = presenter.DefinitionFunc[*Post](func(p *Post) *presenter.Fields {
//		return presenter.NewFields().
//			Set("id", p.ID).
//			Set("title", p.Title).
//			Defer("comment_count", func(ctx context.Context) (any, error) {
//				return p.CountComments(ctx)
//			})
//	})
//
// # Selecting Fields
//
// Configuration calls return the same presenter and can be chained:
//
//   - [Presenter.Only] / [Presenter.ForceOnly]: restrict to keys
//   - [Presenter.Except] / [Presenter.ForceExcept]: remove keys
//   - [Presenter.With]: supplemental fields, never filtered
//   - [Presenter.Preset]: named configuration from a [Presetter]
//   - [Presenter.Appends]: extra top-level entries for pages
//
// Only and Except accumulate across calls; the Force variants replace.
// Keys must be declared by the catalog or by With, otherwise resolution fails
// with an [*InvalidKeysError].
//
// # Resolving
//
//	out, err := presenter.Make(Posts, post).Only("id", "title").Get(ctx)
//	out, err := presenter.Collection(Posts, posts).Except("body").Get(ctx)
//	out, err := presenter.Collection(Posts, presenter.NewLengthAwarePage(posts, total, 20, 1)).Get(ctx)
//
// Values that implement [PlainData], including presenters and pages, are
// converted recursively, so presenters nest as field values.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidKeys]: Only or Except named undeclared keys
//   - [ErrUnknownPreset]: Preset named an unregistered preset
//   - [ErrUnsupportedSource]: Collection was given something it cannot iterate
package presenter
