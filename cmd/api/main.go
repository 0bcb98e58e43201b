package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/libreria-api/internal/application/auth"
	"github.com/tu-usuario/libreria-api/internal/application/usecase"
	"github.com/tu-usuario/libreria-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/libreria-api/internal/infrastructure/supabase"
	httpRouter "github.com/tu-usuario/libreria-api/internal/interfaces/http"
	"github.com/tu-usuario/libreria-api/pkg/config"
	"github.com/tu-usuario/libreria-api/pkg/logger"
)

func main() {
	// Sin SUPABASE_URL / SUPABASE_ANON_KEY no hay nada que servir: abortar ya.
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("supabase_url", cfg.Supabase.URL).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	restockRepo := postgres.NewRestockRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)

	authClient := supabase.NewAuthClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	authUC := auth.New(authClient, profileRepo)

	catalogUC := usecase.NewCatalogUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	restockUC := usecase.NewRestockUseCase(restockRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Librería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		OrderUC:     orderUC,
		ProductUC:   productUC,
		RestockUC:   restockUC,
		AuthUC:      authUC,
		CartDir:     cfg.Cart.Dir,
		AdminPrefix: cfg.Admin.PathPrefix,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
