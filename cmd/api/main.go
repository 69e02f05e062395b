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

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	appcart "github.com/jhoicas/restaurante-api/internal/application/cart"
	"github.com/jhoicas/restaurante-api/internal/application/projection"
	"github.com/jhoicas/restaurante-api/internal/application/session"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/restaurante-api/internal/infrastructure/pdf"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/whatsapp"
	httpRouter "github.com/jhoicas/restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/restaurante-api/pkg/config"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

func main() {
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
		Msg("iniciando aplicación")

	jwtSecret := cfg.Session.Secret
	if jwtSecret == "" {
		// Sin secreto configurado solo aceptable en desarrollo local.
		jwtSecret = "dev-only-secret"
		log.Warn().Msg("SESSION_JWT_SECRET vacío, usando secreto de desarrollo")
	}

	ctx := context.Background()

	kv, err := localstore.OpenKV(cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento local")
	}
	store := localstore.New(kv, cfg.Storage.Key, localstore.NewUUIDGenerator(), time.Now)

	state := projection.NewState()
	store.Subscribe(state)

	if err := store.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar colección de registros")
	}
	seeded, err := localstore.Seed(ctx, store)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar productos de demostración")
	}
	if seeded > 0 {
		log.Info().Int("products", seeded).Msg("colección vacía, productos de demostración creados")
	}

	sessions := session.NewManager()
	links := whatsapp.NewLinkBuilder(cfg.Restaurant.Name, cfg.Restaurant.WhatsAppNumber)
	receipts := infrapdf.NewMarotoReceiptGenerator()

	authUC := auth.NewAuthUseCase(store, state, sessions,
		auth.AdminCredentials{
			Username: cfg.Admin.Username,
			Password: cfg.Admin.Password,
		},
		auth.JWTConfig{
			Secret:     jwtSecret,
			ExpMinutes: cfg.Session.Expiration,
			Issuer:     cfg.Session.Issuer,
		})
	catalogUC := usecase.NewCatalogUseCase(state)
	productUC := usecase.NewProductUseCase(store, state)
	orderUC := usecase.NewOrderUseCase(state, receipts, cfg.Restaurant.Name, cfg.Restaurant.WhatsAppNumber)
	cartUC := appcart.NewCartUseCase(state, store, links, time.Now)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// docs/swagger.json se genera con `swag init -g cmd/api/main.go`; si no
	// existe el servidor arranca igual, solo sin la UI de documentación.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, Swagger UI deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CatalogUC:  catalogUC,
		ProductUC:  productUC,
		OrderUC:    orderUC,
		CartUC:     cartUC,
		Sessions:   sessions,
		Restaurant: cfg.Restaurant,
		JWTSecret:  jwtSecret,
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
