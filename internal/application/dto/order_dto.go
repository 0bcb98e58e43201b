package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerInput datos del cliente al crear un pedido.
type CustomerInput struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"required,min=6"`
}

// OrderItemInput una línea del carrito enviada al crear el pedido.
type OrderItemInput struct {
	ID       int64           `json:"id"`
	Quantity int             `json:"quantity" validate:"min=1"`
	Price    decimal.Decimal `json:"price"`
	Title    string          `json:"title"`
}

// CreateOrderRequest entrada de la acción pública de crear pedido.
type CreateOrderRequest struct {
	Customer CustomerInput    `json:"customer"`
	Items    []OrderItemInput `json:"items"`
	Total    decimal.Decimal  `json:"total"`
	IsGift   bool             `json:"is_gift"`
}

// CreateOrderResponse confirmación de pedido creado.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
	IsGift  bool   `json:"isGift"`
}

// UpdateOrderStatusRequest entrada de la acción privilegiada de cambio de estado.
type UpdateOrderStatusRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	Status string `json:"status" validate:"required"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID              string           `json:"id"`
	CustomerName    string           `json:"customer_name"`
	CustomerContact string           `json:"customer_contact"`
	Items           []OrderItemInput `json:"cart_snapshot"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	Status          string           `json:"status"`
	IsGift          bool             `json:"is_gift"`
	CreatedAt       time.Time        `json:"created_at"`
}
