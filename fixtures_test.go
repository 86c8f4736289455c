package presenter_test

import (
	"context"
	"errors"
	"time"

	"github.com/bjaus/presenter"
)

// --- Test models ---

type comment struct {
	ID   int
	Body string
}

type image struct {
	ID    int
	URL   string
	Pivot string
}

type post struct {
	ID          int
	Title       string
	Body        string
	PublishedAt time.Time

	comments []comment
	images   []image
	loaded   map[string]bool
	queries  int
}

// LoadComments lazily loads the comments relation, counting each load.
func (p *post) LoadComments() []comment {
	if !p.loaded["comments"] {
		p.queries++
		p.load("comments")
	}
	return p.comments
}

func (p *post) load(names ...string) *post {
	if p.loaded == nil {
		p.loaded = map[string]bool{}
	}
	for _, n := range names {
		p.loaded[n] = true
	}
	return p
}

func (p *post) RelationLoaded(name string) bool { return p.loaded[name] }

func (p *post) Relation(name string) any {
	switch name {
	case "comments":
		return p.comments
	case "images":
		return p.images
	default:
		return nil
	}
}

var publishedAt = time.Date(2020, 1, 1, 13, 0, 0, 0, time.UTC)

func newPost(id int) *post {
	return &post{ID: id, Title: "Title", Body: "Body", PublishedAt: publishedAt}
}

func newPostWithComments(id int) *post {
	p := newPost(id)
	p.comments = []comment{{ID: 1, Body: "a"}, {ID: 2, Body: "b"}, {ID: 3, Body: "c"}}
	return p
}

func newPosts(n int) []*post {
	out := make([]*post, n)
	for i := range out {
		out[i] = newPost(i + 1)
	}
	return out
}

// --- Test presenters ---

type postPresenter struct{}

func (postPresenter) Fields(p *post) *presenter.Fields {
	return presenter.NewFields().
		Set("id", p.ID).
		Set("title", p.Title).
		Set("body", p.Body).
		Set("published_at", p.PublishedAt.Format(time.DateOnly)).
		Lazy("comment_count", func() any { return len(p.LoadComments()) })
}

func (postPresenter) Presets() map[string]presenter.Preset[*post] {
	return map[string]presenter.Preset[*post]{
		"summary": func(pr *presenter.Presenter[*post]) *presenter.Presenter[*post] {
			return pr.Only("title", "body")
		},
		"conditionalRelations": func(pr *presenter.Presenter[*post]) *presenter.Presenter[*post] {
			return pr.With(func(p *post) *presenter.Fields {
				return presenter.NewFields().
					Set("comments", presenter.Collection(comments, presenter.WhenLoaded(p, "comments")))
			})
		},
		"pivotRelations": func(pr *presenter.Presenter[*post]) *presenter.Presenter[*post] {
			return pr.With(func(p *post) *presenter.Fields {
				return presenter.NewFields().
					Set("images", presenter.Collection(images, presenter.WhenLoaded(p, "images")))
			})
		},
	}
}

var (
	posts    presenter.Definition[*post]  = postPresenter{}
	comments presenter.Definition[comment] = presenter.DefinitionFunc[comment](func(c comment) *presenter.Fields {
		return presenter.NewFields().Set("id", c.ID).Set("body", c.Body)
	})
	images presenter.Definition[image] = presenter.DefinitionFunc[image](func(i image) *presenter.Fields {
		return presenter.NewFields().Set("id", i.ID).Set("url", i.URL).Set("test", i.Pivot)
	})
	standalone presenter.Definition[presenter.None] = presenter.DefinitionFunc[presenter.None](func(presenter.None) *presenter.Fields {
		return presenter.NewFields().Set("foo", "bar")
	})
)

// customPage adds a links entry to the simple page representation.
type customPage struct {
	*presenter.SimplePage[*post]
}

func (p customPage) ToMap(data []any) *presenter.Map {
	return p.SimplePage.ToMap(data).Set("links", presenter.MapOf("link_1", "foo"))
}

var errLoad = errors.New("load failed")

func failing(context.Context) (any, error) { return nil, errLoad }

// plainOf converts resolved output into builtin maps and slices for
// comparison.
func plainOf(v any) any {
	switch t := v.(type) {
	case *presenter.Map:
		return t.Std()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainOf(e)
		}
		return out
	default:
		return v
	}
}
