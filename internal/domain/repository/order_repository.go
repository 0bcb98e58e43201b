package repository

import (
	"context"

	"github.com/tu-usuario/libreria-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos (orders_leads).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// UpdateStatus cambia el estado y devuelve el pedido actualizado, o (nil, nil) si no existe.
	UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error)
}

// RestockRepository define el puerto de persistencia para solicitudes de restock.
type RestockRepository interface {
	Create(ctx context.Context, req *entity.RestockRequest) error
}

// ProfileRepository lee perfiles de usuario (rol) del servicio de datos.
type ProfileRepository interface {
	// GetByID devuelve (nil, nil) si no hay perfil para ese usuario.
	GetByID(ctx context.Context, userID string) (*entity.Profile, error)
}
