package repository

import "github.com/tu-usuario/libreria-api/internal/domain/entity"

// CartStore almacenamiento durable del carrito: una colección completa bajo
// una sola clave. Cada mutación lee la colección entera y la reescribe como un
// único valor (nunca hay escrituras parciales observables). No hay bloqueo:
// escritores concurrentes sobre la misma clave terminan en last-write-wins.
type CartStore interface {
	// Load devuelve la colección actual; una clave inexistente es un carrito vacío.
	Load() ([]entity.CartItem, error)
	// Save reemplaza la colección completa de forma atómica.
	Save(items []entity.CartItem) error
}
