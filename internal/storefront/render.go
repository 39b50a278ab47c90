package storefront

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/shopspring/decimal"

	"Tienda/internal/catalog"
)

const (
	tmplIndex        = "pages/index.html"
	tmplMobileSearch = "components/mobile_search.html"
	tmplSuggestions  = "components/suggestions.html"
	tmplNoResults    = "components/no_results.html"
	tmplFeatured     = "components/featured.html"
)

// Renderer turns storefront state into HTML. All output goes through
// html/template so catalog names and hrefs are escaped.
type Renderer struct {
	tmpl  *template.Template
	title string
}

type RendererOptions struct {
	Title    string
	Currency string
}

func NewRenderer(templates fs.FS, opts RendererOptions) (*Renderer, error) {
	if opts.Title == "" {
		opts.Title = "Tienda"
	}
	if opts.Currency == "" {
		opts.Currency = "$"
	}

	currency := opts.Currency
	t, err := template.New("storefront").
		Funcs(template.FuncMap{
			"money": func(d decimal.Decimal) string { return currency + d.StringFixed(2) },
		}).
		ParseFS(templates, "pages/*.html", "components/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	for _, name := range []string{tmplIndex, tmplMobileSearch, tmplSuggestions, tmplNoResults, tmplFeatured} {
		if t.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q not defined", name)
		}
	}

	return &Renderer{tmpl: t, title: opts.Title}, nil
}

type indexData struct {
	Title string
}

func (rd *Renderer) Index() ([]byte, error) {
	return rd.execute(tmplIndex, indexData{Title: rd.title})
}

func (rd *Renderer) MobileSearch() ([]byte, error) {
	return rd.execute(tmplMobileSearch, nil)
}

// Suggestions renders nothing for a blank query, a placeholder when a real
// query found nothing, and one link per match otherwise.
func (rd *Renderer) Suggestions(query string, matches []catalog.Item) ([]byte, error) {
	if catalog.NormalizeQuery(query) == "" {
		return nil, nil
	}
	if len(matches) == 0 {
		return rd.execute(tmplNoResults, nil)
	}
	return rd.execute(tmplSuggestions, matches)
}

func (rd *Renderer) Featured(cards []Card) ([]byte, error) {
	return rd.execute(tmplFeatured, cards)
}

func (rd *Renderer) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := rd.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
