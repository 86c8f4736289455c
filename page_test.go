package presenter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/presenter"
)

func TestSimplePagePresented(t *testing.T) {
	t.Parallel()
	page := presenter.NewSimplePage(newPosts(3)[:2], 2, 1)

	out, err := presenter.Collection(posts, page).Only("id").Get(context.Background())
	require.NoError(t, err)

	m := out.(*presenter.Map)
	assert.Equal(t, []string{
		"current_page", "data", "first_page_url", "from", "next_page_url",
		"path", "per_page", "prev_page_url", "to",
	}, m.Keys())
	assert.Equal(t, map[string]any{
		"current_page":   1,
		"data":           []any{map[string]any{"id": 1}, map[string]any{"id": 2}},
		"first_page_url": "/?page=1",
		"from":           1,
		"next_page_url":  nil,
		"path":           "/",
		"per_page":       2,
		"prev_page_url":  nil,
		"to":             2,
	}, m.Std())
}

func TestSimplePageWithMoreItems(t *testing.T) {
	t.Parallel()
	page := presenter.NewSimplePage(newPosts(5)[2:5], 2, 2, presenter.WithPath("/posts"))
	assert.True(t, page.HasMorePages())

	out, err := presenter.Collection(posts, page).Only("id").Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"current_page":   2,
		"data":           []any{map[string]any{"id": 3}, map[string]any{"id": 4}},
		"first_page_url": "/posts?page=1",
		"from":           3,
		"next_page_url":  "/posts?page=3",
		"path":           "/posts",
		"per_page":       2,
		"prev_page_url":  "/posts?page=1",
		"to":             4,
	}, plainOf(out))
}

func TestLengthAwarePagePresented(t *testing.T) {
	t.Parallel()
	all := newPosts(3)
	page := presenter.NewLengthAwarePage(all[:2], len(all), 2, 1)

	out, err := presenter.Collection(posts, page).Only("id").Get(context.Background())
	require.NoError(t, err)

	m := out.(*presenter.Map)
	assert.Equal(t, []string{
		"current_page", "data", "first_page_url", "from", "last_page", "last_page_url",
		"next_page_url", "path", "per_page", "prev_page_url", "to", "total",
	}, m.Keys())
	assert.Equal(t, map[string]any{
		"current_page":   1,
		"data":           []any{map[string]any{"id": 1}, map[string]any{"id": 2}},
		"first_page_url": "/?page=1",
		"from":           1,
		"last_page":      2,
		"last_page_url":  "/?page=2",
		"next_page_url":  "/?page=2",
		"path":           "/",
		"per_page":       2,
		"prev_page_url":  nil,
		"to":             2,
		"total":          3,
	}, m.Std())
}

func TestPageURLs(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts []presenter.PageOption
		want string
	}{
		"default":   {want: "/?page=3"},
		"path":      {opts: []presenter.PageOption{presenter.WithPath("/api/posts")}, want: "/api/posts?page=3"},
		"query":     {opts: []presenter.PageOption{presenter.WithPath("/posts?sort=asc")}, want: "/posts?sort=asc&page=3"},
		"page name": {opts: []presenter.PageOption{presenter.WithPageName("p")}, want: "/?p=3"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			page := presenter.NewLengthAwarePage([]int{1}, 10, 2, 1, tt.opts...)
			assert.Equal(t, tt.want, page.URL(3))
		})
	}
}

func TestEmptyPage(t *testing.T) {
	t.Parallel()
	page := presenter.NewLengthAwarePage([]*post{}, 0, 10, 1)
	assert.Equal(t, 1, page.LastPage())
	assert.False(t, page.HasMorePages())

	out, err := presenter.Collection(posts, page).Get(context.Background())
	require.NoError(t, err)
	m := out.(*presenter.Map)
	data, _ := m.Get("data")
	from, _ := m.Get("from")
	assert.Equal(t, []any{}, data)
	assert.Nil(t, from)
}

func TestPageDefaults(t *testing.T) {
	t.Parallel()
	page := presenter.NewSimplePage([]int{1, 2}, 0, 0)
	assert.Equal(t, 15, page.PerPage())
	assert.Equal(t, 1, page.CurrentPage())
}

func TestAppendsAddsTopLevelKeys(t *testing.T) {
	t.Parallel()
	page := presenter.NewSimplePage(newPosts(3)[:2], 2, 1)

	out, err := presenter.Collection(posts, page).
		Only("id").
		Appends(presenter.MapOf("foo", "bar", "baz", "qux")).
		Get(context.Background())
	require.NoError(t, err)

	m := out.(*presenter.Map)
	keys := m.Keys()
	assert.Equal(t, []string{"foo", "baz"}, keys[len(keys)-2:])
	assert.Equal(t, map[string]any{
		"current_page":   1,
		"data":           []any{map[string]any{"id": 1}, map[string]any{"id": 2}},
		"first_page_url": "/?page=1",
		"from":           1,
		"next_page_url":  nil,
		"path":           "/",
		"per_page":       2,
		"prev_page_url":  nil,
		"to":             2,
		"foo":            "bar",
		"baz":            "qux",
	}, m.Std())
}

func TestAppendsMergesRecursively(t *testing.T) {
	t.Parallel()
	page := customPage{presenter.NewSimplePage(newPosts(3)[:2], 2, 1)}

	out, err := presenter.Collection(posts, page).
		Only("id").
		Appends(presenter.NewMap().
			Set("foo", presenter.MapOf("test", "foo")).
			Set("links", presenter.MapOf("link_2", "bar"))).
		Get(context.Background())
	require.NoError(t, err)

	m := out.(*presenter.Map)
	links, _ := m.Get("links")
	assert.Equal(t, []string{"link_1", "link_2"}, links.(*presenter.Map).Keys())
	assert.Equal(t, map[string]any{
		"current_page":   1,
		"data":           []any{map[string]any{"id": 1}, map[string]any{"id": 2}},
		"first_page_url": "/?page=1",
		"from":           1,
		"next_page_url":  nil,
		"path":           "/",
		"per_page":       2,
		"prev_page_url":  nil,
		"to":             2,
		"foo":            map[string]any{"test": "foo"},
		"links":          map[string]any{"link_1": "foo", "link_2": "bar"},
	}, m.Std())
}

func TestAppendsIgnoredWithoutPage(t *testing.T) {
	t.Parallel()
	out, err := presenter.Collection(posts, newPosts(1)).
		Only("id").
		Appends(presenter.MapOf("foo", "bar")).
		Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"id": 1}}, plainOf(out))

	out, err = presenter.Make(posts, newPost(1)).
		Only("id").
		Appends(presenter.MapOf("foo", "bar")).
		Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": 1}, plainOf(out))
}

func TestPageWithDeferredWith(t *testing.T) {
	t.Parallel()
	page := presenter.NewSimplePage(newPosts(2), 2, 1)

	out, err := presenter.Collection(posts, page).
		Only("id").
		With(func(p *post) *presenter.Fields { return presenter.NewFields().Set("slug", p.Title) }).
		Get(context.Background())
	require.NoError(t, err)
	data, _ := out.(*presenter.Map).Get("data")
	assert.Equal(t, []any{
		map[string]any{"id": 1, "slug": "Title"},
		map[string]any{"id": 2, "slug": "Title"},
	}, plainOf(data))
}

func TestPageToPlainData(t *testing.T) {
	t.Parallel()
	c := comment{ID: 1}
	page := presenter.NewSimplePage([]any{presenter.Make(comments, c).Only("id"), "raw"}, 5, 1)

	out, err := page.ToPlainData(context.Background())
	require.NoError(t, err)
	data, _ := out.(*presenter.Map).Get("data")
	assert.Equal(t, []any{map[string]any{"id": 1}, "raw"}, plainOf(data))
}
