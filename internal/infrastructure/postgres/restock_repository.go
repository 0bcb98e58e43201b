package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/libreria-api/internal/domain/entity"
	"github.com/tu-usuario/libreria-api/internal/domain/repository"
)

var _ repository.RestockRepository = (*RestockRepo)(nil)

// RestockRepo implementación del puerto RestockRepository sobre PostgreSQL (tabla restock_requests).
type RestockRepo struct {
	q Querier
}

// NewRestockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRestockRepository(q Querier) *RestockRepo {
	return &RestockRepo{q: q}
}

// Create guarda el lead de restock.
func (r *RestockRepo) Create(ctx context.Context, req *entity.RestockRequest) error {
	sql := `
		INSERT INTO restock_requests (product_id, customer_contact, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.q.QueryRow(ctx, sql, req.ProductID, req.CustomerContact, req.CreatedAt).Scan(&req.ID); err != nil {
		return fmt.Errorf("insert restock request: %w", err)
	}
	return nil
}
