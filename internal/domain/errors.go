package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation       = errors.New("entrada inválida")
	ErrNoSession        = errors.New("no hay sesión activa, por favor inicia sesión")
	ErrInvalidSession   = errors.New("sesión inválida o expirada")
	ErrPermissionDenied = errors.New("permiso denegado, se requiere rol de administrador")
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrStorage          = errors.New("error del servicio de datos")

	// ErrStockExceeded: el carrito rechazó la mutación porque superaría el
	// tope de stock capturado al agregar la línea. No hay mutación.
	ErrStockExceeded = errors.New("stock máximo alcanzado")
)

// InsufficientStockError rechazo de negocio al crear un pedido: el stock actual
// no alcanza para la cantidad solicitada. Nombra el ítem ofensor y aborta el
// pedido completo (no se crean pedidos parciales).
type InsufficientStockError struct {
	Title string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para: %s", e.Title)
}
