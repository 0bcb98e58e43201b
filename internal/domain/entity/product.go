package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Idiomas soportados por el catálogo (deben coincidir con el CHECK de products.language).
const (
	LanguageES = "es"
	LanguagePT = "pt"
	LanguageEN = "en"
)

// Estados de publicación de un producto.
const (
	ProductStatusActive   = "active"
	ProductStatusDraft    = "draft"
	ProductStatusPreorder = "preorder"
	ProductStatusArchived = "archived"
)

// ValidLanguage indica si el código de idioma está soportado.
func ValidLanguage(lang string) bool {
	switch lang {
	case LanguageES, LanguageEN, LanguagePT:
		return true
	}
	return false
}

// ValidProductStatus indica si el estado de publicación existe.
func ValidProductStatus(status string) bool {
	switch status {
	case ProductStatusActive, ProductStatusDraft, ProductStatusPreorder, ProductStatusArchived:
		return true
	}
	return false
}

// Product representa un libro del catálogo.
// El slug es único (constraint en la tabla products); se deriva del título al crear.
type Product struct {
	ID               int64
	Slug             string
	Title            string
	Author           string
	Price            decimal.Decimal
	PromotionalPrice *decimal.Decimal // nil = sin promoción
	StockQty         int
	CoverImage       string
	CategoryID       int64
	ISBN             string
	PublishedYear    *int
	Description      string
	Language         string // ver constantes Language*
	Status           string // ver constantes ProductStatus*
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CategoryRef referencia mínima a la categoría de un producto (para resultados de búsqueda).
type CategoryRef struct {
	Name string
	Slug string
}
