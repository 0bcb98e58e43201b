package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido (deben coincidir con el CHECK de orders_leads.status).
const (
	OrderStatusPendingWhatsapp = "pending_whatsapp"
	OrderStatusConfirmed       = "confirmed"
	OrderStatusPendingShipment = "pending_shipment"
	OrderStatusReadyForPickup  = "ready_for_pickup"
	OrderStatusCancelled       = "cancelled"
	OrderStatusCompleted       = "completed"
)

// ValidOrderStatus indica si el estado de pedido existe.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPendingWhatsapp, OrderStatusConfirmed, OrderStatusPendingShipment,
		OrderStatusReadyForPickup, OrderStatusCancelled, OrderStatusCompleted:
		return true
	}
	return false
}

// OrderLine una línea del snapshot del carrito guardado con el pedido.
type OrderLine struct {
	ProductID int64           `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order representa un pedido (lead) registrado desde el storefront.
// El snapshot del carrito se guarda como JSON en la columna cart_snapshot;
// el total se redondea a unidades enteras al crear.
type Order struct {
	ID              string // UUID
	CustomerName    string
	CustomerContact string
	Snapshot        []OrderLine
	TotalAmount     decimal.Decimal
	Status          string // ver constantes OrderStatus*
	IsGift          bool
	CreatedAt       time.Time
}
