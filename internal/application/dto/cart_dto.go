package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/libreria-api/internal/domain/entity"
)

// AddCartItemRequest candidato a línea de carrito: un CartItem sin cantidad
// (la cantidad la decide el servicio: 1 al nacer, +1 al repetir).
type AddCartItemRequest struct {
	ID         int64           `json:"id" validate:"required"`
	Slug       string          `json:"slug"`
	Title      string          `json:"title" validate:"required"`
	Price      decimal.Decimal `json:"price"`
	CoverImage string          `json:"cover_image"`
	MaxStock   int             `json:"max_stock" validate:"min=0"`
}

// UpdateCartQuantityRequest nueva cantidad para una línea existente.
type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse colección actual más los flags de panel de la sesión.
type CartResponse struct {
	Items      []entity.CartItem `json:"items"`
	CartOpen   bool              `json:"cart_open"`
	SearchOpen bool              `json:"search_open"`
}
