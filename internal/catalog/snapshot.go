// Package catalog holds the read-only product list the storefront searches
// and the matcher that turns a typed query into suggestions.
package catalog

import "errors"

var ErrEmptyCatalog = errors.New("catalog is empty")

type Item struct {
	Name string `yaml:"name" validate:"required"`
	Href string `yaml:"href" validate:"required"`
}

// Snapshot is an ordered, immutable list of items. Order is the order the
// items were given in and never changes for the lifetime of the process.
type Snapshot struct {
	items []Item
}

func NewSnapshot(items []Item) (*Snapshot, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	cp := make([]Item, len(items))
	copy(cp, items)
	return &Snapshot{items: cp}, nil
}

func Default() *Snapshot {
	s, _ := NewSnapshot(defaultItems)
	return s
}

// Items returns a copy, callers may not mutate the snapshot.
func (s *Snapshot) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Snapshot) Len() int { return len(s.items) }

func (s *Snapshot) Suggest(query string, limit int) []Item {
	return Match(query, s.items, limit)
}

var defaultItems = []Item{
	{Name: "Camiseta básica", Href: "/products/1"},
	{Name: "Zapatillas running", Href: "/products/2"},
	{Name: "Auriculares inalámbricos", Href: "/products/3"},
	{Name: "Silla ergonómica", Href: "/products/4"},
	{Name: "Cafetera automática", Href: "/products/5"},
	{Name: "Laptop gaming", Href: "/products/6"},
	{Name: "Mouse inalámbrico", Href: "/products/7"},
	{Name: "Teclado mecánico", Href: "/products/8"},
}
