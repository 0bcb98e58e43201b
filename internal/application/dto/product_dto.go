package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El slug no viene en la
// entrada: se deriva del título en el caso de uso.
type CreateProductRequest struct {
	Title            string           `json:"title" validate:"required,min=3"`
	Author           string           `json:"author" validate:"required,min=2"`
	Price            decimal.Decimal  `json:"price"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price"`
	StockQty         int              `json:"stock_qty" validate:"min=0"`
	CoverImage       string           `json:"cover_image" validate:"required,url"`
	CategoryID       int64            `json:"category_id" validate:"required"`
	ISBN             string           `json:"isbn"`
	PublishedYear    *int             `json:"published_year"`
	Description      string           `json:"description"`
	Language         string           `json:"language"` // es | en | pt, por defecto es
	Status           string           `json:"status"`   // active | draft | preorder | archived, por defecto active
}

// ProductUpdates campos parciales de actualización (puntero = enviado).
type ProductUpdates struct {
	Title            *string          `json:"title" validate:"omitempty,min=3"`
	Author           *string          `json:"author" validate:"omitempty,min=2"`
	Price            *decimal.Decimal `json:"price"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price"`
	StockQty         *int             `json:"stock_qty"`
	CoverImage       *string          `json:"cover_image" validate:"omitempty,url"`
	CategoryID       *int64           `json:"category_id"`
	ISBN             *string          `json:"isbn"`
	Description      *string          `json:"description"`
	Language         *string          `json:"language"`
	Status           *string          `json:"status"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	ID      int64          `json:"id" validate:"required"`
	Updates ProductUpdates `json:"updates"`
}

// DeleteProductRequest entrada para eliminar un producto.
type DeleteProductRequest struct {
	ID int64 `json:"id" validate:"required"`
}

// DeleteProductResponse confirmación de eliminación.
type DeleteProductResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               int64            `json:"id"`
	Slug             string           `json:"slug"`
	Title            string           `json:"title"`
	Author           string           `json:"author"`
	Price            decimal.Decimal  `json:"price"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price,omitempty"`
	StockQty         int              `json:"stock_qty"`
	CoverImage       string           `json:"cover_image"`
	CategoryID       int64            `json:"category_id"`
	ISBN             string           `json:"isbn,omitempty"`
	PublishedYear    *int             `json:"published_year,omitempty"`
	Description      string           `json:"description,omitempty"`
	Language         string           `json:"language"`
	Status           string           `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
