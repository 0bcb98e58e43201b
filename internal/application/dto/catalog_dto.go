package dto

import "github.com/shopspring/decimal"

// SearchRequest entrada de la búsqueda de catálogo (pública).
type SearchRequest struct {
	Query string `json:"query" validate:"required,min=2"`
}

// CategoryRef categoría embebida en un resultado de búsqueda.
type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SearchResult un producto encontrado por la búsqueda.
type SearchResult struct {
	Title      string          `json:"title"`
	Slug       string          `json:"slug"`
	Price      decimal.Decimal `json:"price"`
	CoverImage string          `json:"cover_image"`
	Author     string          `json:"author"`
	Category   *CategoryRef    `json:"categories,omitempty"`
}
