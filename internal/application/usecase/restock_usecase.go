package usecase

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/tu-usuario/libreria-api/internal/application/dto"
	"github.com/tu-usuario/libreria-api/internal/domain"
	"github.com/tu-usuario/libreria-api/internal/domain/entity"
	"github.com/tu-usuario/libreria-api/internal/domain/repository"
)

// RestockUseCase registro de leads "avísame cuando vuelva" (acción pública).
type RestockUseCase struct {
	repo repository.RestockRepository
}

// NewRestockUseCase construye el caso de uso.
func NewRestockUseCase(repo repository.RestockRepository) *RestockUseCase {
	return &RestockUseCase{repo: repo}
}

// Request guarda la solicitud de aviso de restock de un cliente.
func (uc *RestockUseCase) Request(ctx context.Context, in dto.RestockRequestInput) (*dto.RestockResponse, error) {
	if in.ProductID == 0 {
		return nil, fmt.Errorf("%w: producto requerido", domain.ErrValidation)
	}
	if utf8.RuneCountInString(in.Contact) < 5 {
		return nil, fmt.Errorf("%w: el contacto es muy corto", domain.ErrValidation)
	}

	lead := &entity.RestockRequest{
		ProductID:       in.ProductID,
		CustomerContact: in.Contact,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	return &dto.RestockResponse{
		Success: true,
		Message: "¡Anotado! Te avisaremos si conseguimos otro ejemplar.",
	}, nil
}
