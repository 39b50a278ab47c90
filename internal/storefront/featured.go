package storefront

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	DefaultFeaturedCount = 4
	featuredDescription  = "Descripción breve del producto."
)

var DefaultFeaturedPrice = decimal.RequireFromString("99.99")

// Card is a placeholder product tile. ProductID doubles as the position in
// the featured row and is what the add-to-cart button posts.
type Card struct {
	ProductID   int
	Title       string
	Description string
	Price       decimal.Decimal
}

type FeaturedConfig struct {
	Count int
	Price decimal.Decimal
}

func FeaturedCards(cfg FeaturedConfig) []Card {
	if cfg.Count <= 0 {
		cfg.Count = DefaultFeaturedCount
	}

	cards := make([]Card, 0, cfg.Count)
	for i := 1; i <= cfg.Count; i++ {
		cards = append(cards, Card{
			ProductID:   i,
			Title:       "Producto " + strconv.Itoa(i),
			Description: featuredDescription,
			Price:       cfg.Price,
		})
	}
	return cards
}
