// Package site renders the static content pages of the marketing site
// from embedded markdown.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed content/*.md
var contentFS embed.FS

// Content returns the bundled markdown pages.
func Content() fs.FS {
	sub, _ := fs.Sub(contentFS, "content")
	return sub
}

// Page is one rendered markdown page.
type Page struct {
	Slug  string        `json:"slug"`
	Title string        `json:"title"`
	HTML  template.HTML `json:"-"`
}

// Library holds every page rendered once at startup.
type Library struct {
	pages map[string]*Page
	order []string
	tmpl  *template.Template
}

// newMarkdown initializes goldmark with the extensions used for pages.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// Load renders every *.md file of fsys. The slug is the file name without
// its extension.
func Load(fsys fs.FS) (*Library, error) {
	paths, err := doublestar.Glob(fsys, "**/*.md")
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no markdown pages found")
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	md := newMarkdown()
	lib := &Library{pages: make(map[string]*Page, len(paths)), tmpl: tmpl}
	for _, p := range paths {
		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}

		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("converting %s: %w", p, err)
		}

		slug := strings.TrimSuffix(path.Base(p), ".md")
		if _, dup := lib.pages[slug]; dup {
			return nil, fmt.Errorf("duplicate page slug %q", slug)
		}
		lib.pages[slug] = &Page{
			Slug:  slug,
			Title: extractTitle(string(src), p),
			HTML:  template.HTML(buf.String()),
		}
		lib.order = append(lib.order, slug)
	}
	sort.Strings(lib.order)
	return lib, nil
}

// Get returns the page for slug.
func (l *Library) Get(slug string) (*Page, bool) {
	p, ok := l.pages[slug]
	return p, ok
}

// List returns every page ordered by slug.
func (l *Library) List() []Page {
	out := make([]Page, 0, len(l.order))
	for _, slug := range l.order {
		out = append(out, *l.pages[slug])
	}
	return out
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title   string
	Slug    string
	Content template.HTML
	Nav     []Page
}

// Render writes slug wrapped in the site layout.
func (l *Library) Render(w *bytes.Buffer, slug string) error {
	p, ok := l.pages[slug]
	if !ok {
		return fmt.Errorf("unknown page %q", slug)
	}
	return l.tmpl.Execute(w, pageData{
		Title:   p.Title,
		Slug:    p.Slug,
		Content: p.HTML,
		Nav:     l.List(),
	})
}

// extractTitle pulls the first # heading from markdown content, or falls back to the filename.
func extractTitle(content, relPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return strings.TrimSuffix(path.Base(relPath), ".md")
}
