package storefront_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tienda/internal/catalog"
	"Tienda/internal/storefront"
	"Tienda/internal/web"
)

func newRenderer(t *testing.T) *storefront.Renderer {
	t.Helper()

	rd, err := storefront.NewRenderer(web.Templates(), storefront.RendererOptions{})
	require.NoError(t, err)
	return rd
}

func parse(t *testing.T, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestRenderer_SuggestionsPolicies(t *testing.T) {
	rd := newRenderer(t)

	t.Run("blank query renders nothing", func(t *testing.T) {
		body, err := rd.Suggestions("   ", nil)
		require.NoError(t, err)
		assert.Empty(t, body)
	})

	t.Run("no matches renders placeholder", func(t *testing.T) {
		body, err := rd.Suggestions("xyzzy", nil)
		require.NoError(t, err)

		doc := parse(t, body)
		assert.Equal(t, 1, doc.Find(".no-results").Length())
		assert.Equal(t, "Sin resultados", strings.TrimSpace(doc.Find(".no-results").Text()))
		assert.Zero(t, doc.Find("a").Length())
	})

	t.Run("matches render one link each", func(t *testing.T) {
		matches := []catalog.Item{
			{Name: "Auriculares inalámbricos", Href: "/products/3"},
			{Name: "Mouse inalámbrico", Href: "/products/7"},
		}
		body, err := rd.Suggestions("inal", matches)
		require.NoError(t, err)

		links := parse(t, body).Find("a")
		require.Equal(t, 2, links.Length())
		links.Each(func(i int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			assert.Equal(t, matches[i].Href, href)
			assert.Equal(t, matches[i].Name, a.Find("span").Text())
			src, _ := a.Find("img").Attr("src")
			assert.Equal(t, "/static/img/search.svg", src)
		})
	})

	t.Run("names are escaped", func(t *testing.T) {
		body, err := rd.Suggestions("x", []catalog.Item{{Name: `<script>alert(1)</script>`, Href: `javascript:alert(1)`}})
		require.NoError(t, err)

		assert.NotContains(t, string(body), "<script>")
		assert.NotContains(t, string(body), `href="javascript:`)
	})
}

func TestRenderer_Featured(t *testing.T) {
	rd := newRenderer(t)

	cards := storefront.FeaturedCards(storefront.FeaturedConfig{Count: 4, Price: storefront.DefaultFeaturedPrice})
	body, err := rd.Featured(cards)
	require.NoError(t, err)

	articles := parse(t, body).Find("article")
	require.Equal(t, 4, articles.Length())
	articles.Each(func(i int, a *goquery.Selection) {
		n := i + 1
		assert.Equal(t, "Producto "+strconv.Itoa(n), a.Find("h3").Text())
		assert.Equal(t, "$99.99", a.Find(".price").Text())

		btn := a.Find("button")
		post, _ := btn.Attr("hx-post")
		vals, _ := btn.Attr("hx-vals")
		assert.Equal(t, "/api/v1/cart", post)
		assert.Equal(t, `{"product_id": `+strconv.Itoa(n)+`}`, vals)
	})
}

func TestRenderer_CurrencyOption(t *testing.T) {
	rd, err := storefront.NewRenderer(web.Templates(), storefront.RendererOptions{Currency: "€"})
	require.NoError(t, err)

	body, err := rd.Featured(storefront.FeaturedCards(storefront.FeaturedConfig{Count: 1, Price: decimal.RequireFromString("5")}))
	require.NoError(t, err)
	assert.Equal(t, "€5.00", parse(t, body).Find(".price").Text())
}

func TestNewRenderer_MissingTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"pages/index.html":      {Data: []byte(`{{define "pages/index.html"}}hi{{end}}`)},
		"components/other.html": {Data: []byte(`{{define "components/other.html"}}x{{end}}`)},
	}

	_, err := storefront.NewRenderer(fsys, storefront.RendererOptions{})
	assert.Error(t, err)
}

func TestFeaturedCards_DefaultsCount(t *testing.T) {
	cards := storefront.FeaturedCards(storefront.FeaturedConfig{Price: storefront.DefaultFeaturedPrice})
	require.Len(t, cards, storefront.DefaultFeaturedCount)
	for i, c := range cards {
		assert.Equal(t, i+1, c.ProductID)
	}
}
