package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	appcart "github.com/jhoicas/restaurante-api/internal/application/cart"
	"github.com/jhoicas/restaurante-api/internal/application/session"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CatalogUC  *usecase.CatalogUseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *usecase.OrderUseCase
	CartUC     *appcart.CartUseCase
	Sessions   *session.Manager
	Restaurant config.RestaurantConfig
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos; logout requiere sesión)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret, deps.Sessions), authHandler.Logout)

	// Vitrina (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.Restaurant)
	api.Get("/storefront", catalogHandler.Storefront)
	api.Get("/catalog", catalogHandler.Catalog)
	api.Get("/carousel", catalogHandler.Carousel)

	// Carrito (solo clientes con sesión)
	cartGroup := api.Group("/cart", AuthMiddleware(deps.JWTSecret, deps.Sessions), RequireRole(entity.RoleCustomer))
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.View)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Patch("/items/:index", cartHandler.ChangeQuantity)
	cartGroup.Put("/payment", cartHandler.SelectPayment)
	cartGroup.Post("/checkout", cartHandler.Checkout)

	// Panel admin (protegido)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret, deps.Sessions), RequireRole(entity.RoleAdmin))

	products := admin.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/availability", productHandler.ToggleAvailability)
	products.Delete("/:id", productHandler.Delete)

	orders := admin.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id/pdf", orderHandler.ReceiptPDF)
}
