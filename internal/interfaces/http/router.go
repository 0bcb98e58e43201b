package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/libreria-api/internal/application/auth"
	"github.com/tu-usuario/libreria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUseCase
	OrderUC     *usecase.OrderUseCase
	ProductUC   *usecase.ProductUseCase
	RestockUC   *usecase.RestockUseCase
	AuthUC      *auth.UseCase
	CartDir     string
	AdminPrefix string
}

// Router registra el guard del panel, las páginas de admin y las acciones del storefront.
func Router(app *fiber.App, deps RouterDeps) {
	prefix := deps.AdminPrefix
	if prefix == "" {
		prefix = "/admin"
	}

	// Guard de cookies sobre todo el prefijo /admin (chequeo de presencia; la
	// validación real de la sesión la hace cada acción privilegiada).
	app.Use(AdminGuard(AdminGuardConfig{PathPrefix: prefix}))

	// Páginas del panel. Las vistas reales las sirve el frontend; estos
	// endpoints existen como destinos de las redirecciones del guard.
	app.Get(prefix+"/login", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "login"})
	})
	app.Get(prefix+"/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "dashboard"})
	})

	api := app.Group("/api")

	// Acciones del storefront (estilo RPC: una ruta POST por acción).
	actions := api.Group("/actions")

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.AuthUC)
	productHandler := NewProductHandler(deps.ProductUC, deps.AuthUC)
	restockHandler := NewRestockHandler(deps.RestockUC)

	// Públicas
	actions.Post("/search-products", catalogHandler.Search)
	actions.Post("/create-order", orderHandler.Create)
	actions.Post("/request-restock", restockHandler.Request)

	// Privilegiadas (requieren sesión de administrador en cada llamada)
	actions.Post("/create-product", productHandler.Create)
	actions.Post("/update-product", productHandler.Update)
	actions.Post("/delete-product", productHandler.Delete)
	actions.Post("/update-order-status", orderHandler.UpdateStatus)

	// Carrito por sesión de navegación
	cartHandler := NewCartHandler(deps.CartDir)
	cartGroup := api.Group("/cart")
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Patch("/items/:id", cartHandler.UpdateQuantity)
	cartGroup.Delete("/items/:id", cartHandler.RemoveItem)
}
