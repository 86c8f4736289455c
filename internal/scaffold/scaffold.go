// Package scaffold writes new presenter source files from a template.
package scaffold

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrExists      = errors.New("presenter already exists")
	ErrInvalidName = errors.New("invalid presenter name")
)

//go:embed presenter.go.tmpl
var presenterTemplate string

var tmpl = template.Must(template.New("presenter").Parse(presenterTemplate))

// Options describes one presenter to generate.
type Options struct {
	// Name is a type name such as "PostPresenter", optionally prefixed with a
	// slash-separated folder ("blog/PostPresenter"). A prefixed name is
	// written to that folder instead of the configured one.
	Name string
	// Item is the Go type presented. Default: "any".
	Item string
	// Root is the directory paths are relative to. Default: ".".
	Root string
	// Force overwrites an existing file.
	Force bool

	Config Config
	Logger *zap.Logger
}

// Result describes a generated file.
type Result struct {
	Path    string
	Package string
	Type    string
}

// Plan resolves where and how a presenter would be generated without writing
// anything.
func Plan(opts Options) (Result, error) {
	name := strings.Trim(filepath.ToSlash(opts.Name), "/")
	parts := strings.Split(name, "/")
	typ := cases.Title(language.Und, cases.NoLower).String(parts[len(parts)-1])
	if !token.IsIdentifier(typ) || !token.IsExported(typ) {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidName, opts.Name)
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	dir := filepath.Join(root, opts.Config.Dir)
	pkg := opts.Config.Package
	if len(parts) > 1 {
		folders := parts[:len(parts)-1]
		dir = filepath.Join(append([]string{root}, folders...)...)
		pkg = packageName(folders[len(folders)-1])
	}
	if !token.IsIdentifier(pkg) {
		return Result{}, fmt.Errorf("%w: package %q", ErrInvalidName, pkg)
	}
	return Result{
		Path:    filepath.Join(dir, snake(typ)+".go"),
		Package: pkg,
		Type:    typ,
	}, nil
}

// Generate writes the presenter file. An existing file is only replaced when
// Force is set.
func Generate(opts Options) (Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	res, err := Plan(opts)
	if err != nil {
		return Result{}, err
	}
	if _, err := os.Stat(res.Path); err == nil {
		if !opts.Force {
			return Result{}, fmt.Errorf("%w: %s", ErrExists, res.Path)
		}
		log.Debug("overwriting presenter", zap.String("path", res.Path))
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Result{}, fmt.Errorf("stat %s: %w", res.Path, err)
	}

	src, err := Render(res.Package, res.Type, opts.Item)
	if err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(filepath.Dir(res.Path), 0o755); err != nil {
		return Result{}, fmt.Errorf("create dir: %w", err)
	}
	if err := os.WriteFile(res.Path, src, 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", res.Path, err)
	}
	log.Debug("presenter written",
		zap.String("path", res.Path),
		zap.String("package", res.Package),
		zap.String("type", res.Type),
	)
	return res, nil
}

// Render returns the formatted source of a presenter.
func Render(pkg, typ, item string) ([]byte, error) {
	if item == "" {
		item = "any"
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Package, Type, Item string }{pkg, typ, item}); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return src, nil
}

// snake converts PostPresenter to post_presenter, keeping acronyms together
// (HTTPPresenter becomes http_presenter).
func snake(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(rs[i-1]) || unicode.IsDigit(rs[i-1]))
			nextLower := i > 0 && i+1 < len(rs) && unicode.IsLower(rs[i+1]) && unicode.IsUpper(rs[i-1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func packageName(folder string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "", ".", "").Replace(folder))
}
