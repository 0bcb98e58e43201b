package http

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/libreria-api/internal/application/cart"
	"github.com/tu-usuario/libreria-api/internal/application/dto"
	"github.com/tu-usuario/libreria-api/internal/domain/entity"
	"github.com/tu-usuario/libreria-api/internal/infrastructure/localstore"
)

// CookieCartSession identifica la sesión de navegación dueña de un carrito.
const CookieCartSession = "cart-session"

// cartSessionMaxAge 30 días, igual que la vida útil esperada de un carrito abandonado.
const cartSessionMaxAge = 60 * 60 * 24 * 30

// CartHandler expone el carrito por sesión de navegación. El carrito es
// durable (un documento JSON por sesión); los flags de panel viven solo en
// memoria y se reinician con el proceso.
type CartHandler struct {
	dir string

	mu     sync.Mutex
	panels map[string]*cart.PanelState
}

// NewCartHandler construye el handler con el directorio de persistencia.
func NewCartHandler(dir string) *CartHandler {
	return &CartHandler{dir: dir, panels: make(map[string]*cart.PanelState)}
}

// session resuelve la clave de sesión (mintando la cookie si hace falta) y
// construye el servicio de carrito atado a su almacenamiento. Un servicio por
// petición: cada pestaña tiene su propia caché en memoria del valor durable y
// los escritores concurrentes terminan en last-write-wins.
func (h *CartHandler) session(c *fiber.Ctx) (*cart.Service, *cart.PanelState) {
	key := c.Cookies(CookieCartSession)
	if _, err := uuid.Parse(key); err != nil {
		key = uuid.New().String()
		c.Cookie(&fiber.Cookie{
			Name:     CookieCartSession,
			Value:    key,
			Path:     "/",
			MaxAge:   cartSessionMaxAge,
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}

	h.mu.Lock()
	panels, ok := h.panels[key]
	if !ok {
		panels = cart.NewPanelState()
		h.panels[key] = panels
	}
	h.mu.Unlock()

	return cart.New(localstore.New(h.dir, key), panels), panels
}

func (h *CartHandler) respond(c *fiber.Ctx, svc *cart.Service, panels *cart.PanelState) error {
	items, err := svc.Items()
	if err != nil {
		return respondError(c, err, "No se pudo leer el carrito.")
	}
	return c.JSON(dto.CartResponse{
		Items:      items,
		CartOpen:   panels.CartOpen,
		SearchOpen: panels.SearchOpen,
	})
}

// Get devuelve la colección actual y los flags de panel.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	svc, panels := h.session(c)
	return h.respond(c, svc, panels)
}

// AddItem agrega un producto o incrementa su línea; abre el drawer en éxito.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ID == 0 || in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id y title son requeridos"})
	}
	svc, panels := h.session(c)
	err := svc.AddItem(entity.CartItem{
		ID:         in.ID,
		Slug:       in.Slug,
		Title:      in.Title,
		Price:      in.Price,
		CoverImage: in.CoverImage,
		MaxStock:   in.MaxStock,
	})
	if err != nil {
		return respondError(c, err, "No se pudo actualizar el carrito.")
	}
	return h.respond(c, svc, panels)
}

// UpdateQuantity fija la cantidad de una línea; 0 o menos la elimina.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	svc, panels := h.session(c)
	if err := svc.UpdateQuantity(int64(id), in.Quantity); err != nil {
		return respondError(c, err, "No se pudo actualizar el carrito.")
	}
	return h.respond(c, svc, panels)
}

// RemoveItem elimina una línea completa; una línea inexistente no es error.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	svc, panels := h.session(c)
	if err := svc.RemoveItem(int64(id)); err != nil {
		return respondError(c, err, "No se pudo actualizar el carrito.")
	}
	return h.respond(c, svc, panels)
}
