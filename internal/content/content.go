// Package content holds the editorial content of the site: testimonials, the
// home page FAQ and the Markdown pages (legal notice, terms of sale, story).
package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed pages/*.md
var pagesFS embed.FS

// Page is a rendered Markdown page.
type Page struct {
	Slug  string
	Title string
	HTML  template.HTML
}

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

var (
	pagesOnce sync.Once
	pages     map[string]Page
	pagesErr  error
)

// Render converts Markdown source to a Page. The first "# " heading becomes
// the title and is left out of the body.
func Render(slug string, src []byte) (Page, error) {
	title, body := splitTitle(string(src), slug)

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return Page{}, fmt.Errorf("converting %s: %w", slug, err)
	}
	return Page{Slug: slug, Title: title, HTML: template.HTML(buf.String())}, nil
}

// Pages returns every embedded page keyed by slug.
func Pages() (map[string]Page, error) {
	pagesOnce.Do(func() {
		pages, pagesErr = loadPages()
	})
	return pages, pagesErr
}

// PageBySlug returns one embedded page.
func PageBySlug(slug string) (Page, bool) {
	all, err := Pages()
	if err != nil {
		return Page{}, false
	}
	p, ok := all[slug]
	return p, ok
}

// Slugs lists the embedded pages in alphabetical order.
func Slugs() []string {
	all, _ := Pages()
	slugs := make([]string, 0, len(all))
	for s := range all {
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)
	return slugs
}

func loadPages() (map[string]Page, error) {
	entries, err := pagesFS.ReadDir("pages")
	if err != nil {
		return nil, fmt.Errorf("reading embedded pages: %w", err)
	}
	out := make(map[string]Page, len(entries))
	for _, e := range entries {
		src, err := pagesFS.ReadFile(path.Join("pages", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		slug := strings.TrimSuffix(e.Name(), ".md")
		p, err := Render(slug, src)
		if err != nil {
			return nil, err
		}
		out[slug] = p
	}
	return out, nil
}

func splitTitle(src, fallback string) (string, string) {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			rest := append(lines[:i:i], lines[i+1:]...)
			return strings.TrimPrefix(trimmed, "# "), strings.Join(rest, "\n")
		}
	}
	return fallback, src
}
