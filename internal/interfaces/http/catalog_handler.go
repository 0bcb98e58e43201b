package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/libreria-api/internal/application/dto"
	"github.com/tu-usuario/libreria-api/internal/application/usecase"
)

// CatalogHandler acción pública de búsqueda del catálogo.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Search busca productos por texto (mínimo 2 letras, máximo 6 resultados).
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	results, err := h.uc.Search(c.Context(), in.Query)
	if err != nil {
		return respondError(c, err, "Error al conectar con el catálogo.")
	}
	return c.JSON(results)
}
