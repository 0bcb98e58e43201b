package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/libreria-api/internal/domain/entity"
	"github.com/tu-usuario/libreria-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (tabla orders_leads; el snapshot del carrito vive en una columna jsonb).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta el pedido completo como una sola fila.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	snapshot, err := json.Marshal(order.Snapshot)
	if err != nil {
		return fmt.Errorf("codificar snapshot: %w", err)
	}
	sql := `
		INSERT INTO orders_leads (id, customer_name, customer_contact, cart_snapshot, total_amount, status, is_gift, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, sql,
		order.ID, order.CustomerName, order.CustomerContact, snapshot,
		order.TotalAmount, order.Status, order.IsGift, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado y devuelve el pedido actualizado, o (nil, nil) si el ID no existe.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	sql := `
		UPDATE orders_leads SET status = $2
		WHERE id = $1
		RETURNING id, customer_name, customer_contact, cart_snapshot, total_amount, status, is_gift, created_at`
	var o entity.Order
	var snapshot []byte
	err := r.q.QueryRow(ctx, sql, id, status).Scan(
		&o.ID, &o.CustomerName, &o.CustomerContact, &snapshot,
		&o.TotalAmount, &o.Status, &o.IsGift, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &o.Snapshot); err != nil {
			return nil, fmt.Errorf("decodificar snapshot: %w", err)
		}
	}
	return &o, nil
}
