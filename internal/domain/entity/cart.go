package entity

import "github.com/shopspring/decimal"

// CartItem una línea del carrito de compras.
//
// Invariantes que mantiene el servicio de carrito:
//   - 0 < Quantity <= MaxStock para toda línea presente;
//   - una línea con cantidad cero se elimina, nunca se conserva;
//   - no hay dos líneas con el mismo ID.
//
// Los tags JSON son la forma durable (clave cart-v1): deben permanecer
// estables para que el carrito guardado sobreviva despliegues.
type CartItem struct {
	ID         int64           `json:"id"`
	Slug       string          `json:"slug"`
	Title      string          `json:"title"`
	Price      decimal.Decimal `json:"price"`
	CoverImage string          `json:"cover_image"`
	Quantity   int             `json:"quantity"`
	MaxStock   int             `json:"max_stock"` // tope de compra, capturado al agregar e inmutable después
}
