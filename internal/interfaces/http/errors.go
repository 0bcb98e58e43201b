package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/libreria-api/internal/application/dto"
	"github.com/tu-usuario/libreria-api/internal/domain"
)

// genericStorageMessage texto por defecto cuando el servicio de datos falla y
// el handler no aporta uno más específico.
const genericStorageMessage = "No se pudo completar la operación. Intenta de nuevo."

// respondError traduce errores de dominio a respuestas HTTP con texto apto
// para el usuario. Los fallos de validación y de negocio llevan su mensaje
// específico; cualquier otro error se trata como fallo del servicio de datos:
// se registra completo en el log y al cliente solo le llega storageMsg.
func respondError(c *fiber.Ctx, err error, storageMsg string) error {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNoSession):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: domain.ErrNoSession.Error()})
	case errors.Is(err, domain.ErrInvalidSession):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: domain.ErrInvalidSession.Error()})
	case errors.Is(err, domain.ErrPermissionDenied):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: domain.ErrPermissionDenied.Error()})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: stockErr.Error()})
	case errors.Is(err, domain.ErrStockExceeded):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_EXCEEDED", Message: "¡No tenemos más stock de este libro por el momento!"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	default:
		if storageMsg == "" {
			storageMsg = genericStorageMessage
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("fallo del servicio de datos")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "STORAGE", Message: storageMsg})
	}
}
