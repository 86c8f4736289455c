package presenter

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Paginator is a page of items. The presenter transforms Items and hands the
// results back to ToMap, which returns the page's own representation with
// the transformed items in it.
type Paginator[T any] interface {
	Items() []T
	ToMap(data []any) *Map
}

const defaultPerPage = 15

// PageOption configures the URLs of a page.
type PageOption func(*pageConfig)

type pageConfig struct {
	path     string
	pageName string
}

// WithPath sets the base path of page URLs. Default: "/".
func WithPath(path string) PageOption {
	return func(c *pageConfig) { c.path = path }
}

// WithPageName sets the query parameter carrying the page number.
// Default: "page".
func WithPageName(name string) PageOption {
	return func(c *pageConfig) { c.pageName = name }
}

type page[T any] struct {
	items       []T
	perPage     int
	currentPage int
	cfg         pageConfig
}

func newPage[T any](items []T, perPage, currentPage int, opts []PageOption) page[T] {
	cfg := pageConfig{path: "/", pageName: "page"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if currentPage < 1 {
		currentPage = 1
	}
	return page[T]{items: items, perPage: perPage, currentPage: currentPage, cfg: cfg}
}

// Items returns the items on the page.
func (p *page[T]) Items() []T { return p.items }

// CurrentPage returns the 1-based page number.
func (p *page[T]) CurrentPage() int { return p.currentPage }

// PerPage returns the page size.
func (p *page[T]) PerPage() int { return p.perPage }

// URL returns the URL of page n.
func (p *page[T]) URL(n int) string {
	if n < 1 {
		n = 1
	}
	q := url.Values{}
	q.Set(p.cfg.pageName, strconv.Itoa(n))
	sep := "?"
	if strings.Contains(p.cfg.path, "?") {
		sep = "&"
	}
	return p.cfg.path + sep + q.Encode()
}

// FirstItem returns the 1-based position of the first item, or nil when the
// page is empty.
func (p *page[T]) FirstItem() any {
	if len(p.items) == 0 {
		return nil
	}
	return (p.currentPage-1)*p.perPage + 1
}

// LastItem returns the 1-based position of the last item, or nil when the
// page is empty.
func (p *page[T]) LastItem() any {
	if len(p.items) == 0 {
		return nil
	}
	return (p.currentPage-1)*p.perPage + len(p.items)
}

func (p *page[T]) prevURL() any {
	if p.currentPage <= 1 {
		return nil
	}
	return p.URL(p.currentPage - 1)
}

func (p *page[T]) nextURL(hasMore bool) any {
	if !hasMore {
		return nil
	}
	return p.URL(p.currentPage + 1)
}

func pageData(data []any) []any {
	if data == nil {
		return []any{}
	}
	return data
}

// SimplePage is a page that only knows whether another page follows.
type SimplePage[T any] struct {
	page[T]
	hasMore bool
}

// NewSimplePage returns a simple page. items may hold one more element than
// perPage to signal that a further page exists; the extra element is not
// presented.
func NewSimplePage[T any](items []T, perPage, currentPage int, opts ...PageOption) *SimplePage[T] {
	p := newPage(items, perPage, currentPage, opts)
	hasMore := len(p.items) > p.perPage
	if hasMore {
		p.items = p.items[:p.perPage]
	}
	return &SimplePage[T]{page: p, hasMore: hasMore}
}

// HasMorePages reports whether a further page exists.
func (p *SimplePage[T]) HasMorePages() bool { return p.hasMore }

// ToMap returns the page representation around data.
func (p *SimplePage[T]) ToMap(data []any) *Map {
	return MapOf(
		"current_page", p.currentPage,
		"data", pageData(data),
		"first_page_url", p.URL(1),
		"from", p.FirstItem(),
		"next_page_url", p.nextURL(p.hasMore),
		"path", p.cfg.path,
		"per_page", p.perPage,
		"prev_page_url", p.prevURL(),
		"to", p.LastItem(),
	)
}

// ToPlainData returns the page representation around the raw items.
func (p *SimplePage[T]) ToPlainData(ctx context.Context) (any, error) {
	return pagePlainData(ctx, p)
}

// LengthAwarePage is a page that knows the total number of items.
type LengthAwarePage[T any] struct {
	page[T]
	total int
}

// NewLengthAwarePage returns a page of items out of total.
func NewLengthAwarePage[T any](items []T, total, perPage, currentPage int, opts ...PageOption) *LengthAwarePage[T] {
	return &LengthAwarePage[T]{page: newPage(items, perPage, currentPage, opts), total: max(total, 0)}
}

// Total returns the total number of items across all pages.
func (p *LengthAwarePage[T]) Total() int { return p.total }

// LastPage returns the number of the last page; at least 1.
func (p *LengthAwarePage[T]) LastPage() int {
	return max((p.total+p.perPage-1)/p.perPage, 1)
}

// HasMorePages reports whether a further page exists.
func (p *LengthAwarePage[T]) HasMorePages() bool { return p.currentPage < p.LastPage() }

// ToMap returns the page representation around data.
func (p *LengthAwarePage[T]) ToMap(data []any) *Map {
	return MapOf(
		"current_page", p.currentPage,
		"data", pageData(data),
		"first_page_url", p.URL(1),
		"from", p.FirstItem(),
		"last_page", p.LastPage(),
		"last_page_url", p.URL(p.LastPage()),
		"next_page_url", p.nextURL(p.HasMorePages()),
		"path", p.cfg.path,
		"per_page", p.perPage,
		"prev_page_url", p.prevURL(),
		"to", p.LastItem(),
		"total", p.total,
	)
}

// ToPlainData returns the page representation around the raw items.
func (p *LengthAwarePage[T]) ToPlainData(ctx context.Context) (any, error) {
	return pagePlainData(ctx, p)
}

func pagePlainData[T any](ctx context.Context, p Paginator[T]) (any, error) {
	items := p.Items()
	data := make([]any, len(items))
	for i, item := range items {
		data[i] = item
	}
	return p.ToMap(data).ToPlainData(ctx)
}
