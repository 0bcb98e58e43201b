package auth

import (
	"context"

	"github.com/tu-usuario/libreria-api/internal/domain"
	"github.com/tu-usuario/libreria-api/internal/domain/entity"
	"github.com/tu-usuario/libreria-api/internal/domain/repository"
)

// SessionVerifier contrato mínimo con el servicio de auth alojado.
// Lo implementa *supabase.AuthClient.
type SessionVerifier interface {
	ExchangeSession(ctx context.Context, accessToken, refreshToken string) (*entity.Session, error)
}

// UseCase autorización de administrador para acciones privilegiadas.
// Las credenciales llegan como argumentos explícitos (nunca se leen del
// contexto de la petición aquí) y el chequeo se repite en cada llamada
// privilegiada, sin caché entre llamadas.
type UseCase struct {
	verifier    SessionVerifier
	profileRepo repository.ProfileRepository
}

// New construye el caso de uso de autorización.
func New(verifier SessionVerifier, profileRepo repository.ProfileRepository) *UseCase {
	return &UseCase{verifier: verifier, profileRepo: profileRepo}
}

// Authorize confirma que el par de cookies corresponde a una sesión válida de
// un usuario con rol de administrador:
//  1. sin alguna de las dos credenciales -> ErrNoSession;
//  2. intercambio fallido o sin sesión -> ErrInvalidSession;
//  3. perfil ausente, con error, o rol distinto de admin -> ErrPermissionDenied;
//  4. éxito -> la sesión validada para uso del caller.
func (uc *UseCase) Authorize(ctx context.Context, accessToken, refreshToken string) (*entity.Session, error) {
	if accessToken == "" || refreshToken == "" {
		return nil, domain.ErrNoSession
	}

	session, err := uc.verifier.ExchangeSession(ctx, accessToken, refreshToken)
	if err != nil || session == nil {
		return nil, domain.ErrInvalidSession
	}

	profile, err := uc.profileRepo.GetByID(ctx, session.UserID)
	if err != nil || profile == nil || profile.Role != entity.RoleAdmin {
		return nil, domain.ErrPermissionDenied
	}

	return session, nil
}
