package repository

import (
	"context"

	"github.com/tu-usuario/libreria-api/internal/domain/entity"
)

// SearchResult fila de la búsqueda de catálogo (producto + categoría).
type SearchResult struct {
	Product  entity.Product
	Category *entity.CategoryRef // nil si el producto no tiene categoría
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Search busca por texto completo (websearch, configuración en español) y limita resultados.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}
