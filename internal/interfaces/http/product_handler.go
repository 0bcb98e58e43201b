package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/libreria-api/internal/application/auth"
	"github.com/tu-usuario/libreria-api/internal/application/dto"
	"github.com/tu-usuario/libreria-api/internal/application/usecase"
)

// ProductHandler acciones privilegiadas de catálogo (crear, actualizar, eliminar).
// Cada acción re-verifica la sesión de administrador antes de escribir.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	authUC *auth.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, authUC *auth.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc, authUC: authUC}
}

func (h *ProductHandler) authorize(c *fiber.Ctx) error {
	_, err := h.authUC.Authorize(c.Context(), c.Cookies(CookieAccessToken), c.Cookies(CookieRefreshToken))
	return err
}

// Create da de alta un libro; el slug se deriva del título.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	if err := h.authorize(c); err != nil {
		return respondError(c, err, "")
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "Error al crear. Verifica los datos.")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update aplica cambios parciales a un libro existente.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	if err := h.authorize(c); err != nil {
		return respondError(c, err, "")
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return respondError(c, err, "No se pudo actualizar el libro.")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "libro no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un libro del catálogo.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.authorize(c); err != nil {
		return respondError(c, err, "")
	}
	var in dto.DeleteProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Delete(c.Context(), in.ID); err != nil {
		return respondError(c, err, "No se pudo eliminar (posibles pedidos asociados).")
	}
	return c.JSON(dto.DeleteProductResponse{Success: true, ID: in.ID})
}
