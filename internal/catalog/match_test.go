package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tienda/internal/catalog"
)

func names(items []catalog.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestMatch(t *testing.T) {
	items := catalog.Default().Items()

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{name: "empty query", query: "", limit: 6, want: []string{}},
		{name: "whitespace query", query: " \t\n ", limit: 6, want: []string{}},
		{name: "no match", query: "xyzzy", limit: 6, want: []string{}},
		{name: "case insensitive", query: "CAMISETA", limit: 6, want: []string{"Camiseta básica"}},
		{name: "trimmed", query: "  laptop  ", limit: 6, want: []string{"Laptop gaming"}},
		{name: "non ascii substring", query: "INALÁMBRIC", limit: 6, want: []string{"Auriculares inalámbricos", "Mouse inalámbrico"}},
		{name: "catalog order kept", query: "a", limit: 6, want: []string{
			"Camiseta básica",
			"Zapatillas running",
			"Auriculares inalámbricos",
			"Silla ergonómica",
			"Cafetera automática",
			"Laptop gaming",
		}},
		{name: "limit applied", query: "a", limit: 2, want: []string{"Camiseta básica", "Zapatillas running"}},
		{name: "zero limit", query: "a", limit: 0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(catalog.Match(tt.query, items, tt.limit)))
		})
	}
}

func TestSnapshot_IsImmutable(t *testing.T) {
	src := []catalog.Item{{Name: "Uno", Href: "/products/1"}}
	s, err := catalog.NewSnapshot(src)
	require.NoError(t, err)

	src[0].Name = "changed"
	got := s.Items()
	got[0].Name = "changed too"

	assert.Equal(t, "Uno", s.Items()[0].Name)
	assert.Equal(t, 1, s.Len())
}

func TestNewSnapshot_Empty(t *testing.T) {
	_, err := catalog.NewSnapshot(nil)
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}

func TestSnapshot_SuggestIsStable(t *testing.T) {
	s := catalog.Default()
	first := s.Suggest("ca", catalog.DefaultSuggestionLimit)
	second := s.Suggest("ca", catalog.DefaultSuggestionLimit)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Camiseta básica", "Silla ergonómica", "Cafetera automática"}, names(first))
}
