package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tienda/internal/catalog"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	err := os.WriteFile(path, []byte(`items:
  - name: Taza cerámica
    href: /products/10
  - name: Tetera
    href: /products/11
`), 0o600)
	require.NoError(t, err)

	s, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []catalog.Item{
		{Name: "Taza cerámica", Href: "/products/10"},
		{Name: "Tetera", Href: "/products/11"},
	}, s.Items())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty document", doc: ""},
		{name: "no items", doc: "items: []\n"},
		{name: "unknown field", doc: "items:\n  - name: A\n    href: /a\n    price: 3\n"},
		{name: "missing href", doc: "items:\n  - name: A\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Decode(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}
