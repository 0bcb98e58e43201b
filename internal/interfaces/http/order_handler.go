package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/libreria-api/internal/application/auth"
	"github.com/tu-usuario/libreria-api/internal/application/dto"
	"github.com/tu-usuario/libreria-api/internal/application/usecase"
)

// OrderHandler creación de pedidos (pública) y cambio de estado (privilegiada).
type OrderHandler struct {
	uc     *usecase.OrderUseCase
	authUC *auth.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, authUC *auth.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc, authUC: authUC}
}

// Create registra un pedido desde el storefront. Valida el stock de cada ítem
// antes de insertar; si alguno falla no se crea nada.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "No se pudo registrar el pedido.")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus cambia el estado de un pedido. Requiere sesión de administrador;
// la autorización se re-ejecuta en cada llamada, sin caché.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	if _, err := h.authUC.Authorize(c.Context(), c.Cookies(CookieAccessToken), c.Cookies(CookieRefreshToken)); err != nil {
		return respondError(c, err, "")
	}
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Context(), in)
	if err != nil {
		return respondError(c, err, "No se pudo cambiar el estado.")
	}
	return c.JSON(out)
}
