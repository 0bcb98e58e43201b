package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/libreria-api/internal/domain/entity"
	"github.com/tu-usuario/libreria-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL
// (tabla profiles, poblada por el servicio de auth).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// GetByID obtiene el perfil del usuario. Devuelve (nil, nil) si no hay fila.
func (r *ProfileRepo) GetByID(ctx context.Context, userID string) (*entity.Profile, error) {
	var p entity.Profile
	err := r.q.QueryRow(ctx, `SELECT id, role, created_at FROM profiles WHERE id = $1`, userID).
		Scan(&p.ID, &p.Role, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
