package models

import "github.com/shopspring/decimal"

// ProductCard is the reduced projection used by list views (backend card_mode=true)
type ProductCard struct {
	ID       ID              `json:"product_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
}

// Specification is one {spec name, spec value} row, kept in backend order
type Specification struct {
	Name  string `json:"spec_name"`
	Value string `json:"spec_value"`
}

// Product is the full record. Brand and Subcategory stay empty when the backend sends null.
type Product struct {
	ProductCard
	Brand          string          `json:"brand"`
	Category       string          `json:"category"`
	Subcategory    string          `json:"subcategory"`
	Description    string          `json:"description,omitempty"`
	Specifications []Specification `json:"specifications,omitempty"`
}

// FromCards lifts card projections into products with only the card fields set.
func FromCards(cards []ProductCard) []Product {
	out := make([]Product, len(cards))
	for i, c := range cards {
		out[i] = Product{ProductCard: c}
	}
	return out
}
