package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/libreria-api/internal/application/dto"
	"github.com/tu-usuario/libreria-api/internal/application/usecase"
)

// RestockHandler acción pública "avísame cuando vuelva".
type RestockHandler struct {
	uc *usecase.RestockUseCase
}

// NewRestockHandler construye el handler.
func NewRestockHandler(uc *usecase.RestockUseCase) *RestockHandler {
	return &RestockHandler{uc: uc}
}

// Request registra el lead de restock de un cliente.
func (h *RestockHandler) Request(c *fiber.Ctx) error {
	var in dto.RestockRequestInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Request(c.Context(), in)
	if err != nil {
		return respondError(c, err, "No pudimos guardar tu solicitud. Intenta de nuevo.")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
