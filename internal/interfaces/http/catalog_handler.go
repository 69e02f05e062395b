package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/pkg/config"
)

// CatalogHandler maneja las vistas públicas de la tienda (sin autenticación).
type CatalogHandler struct {
	uc         *usecase.CatalogUseCase
	restaurant config.RestaurantConfig
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, restaurant config.RestaurantConfig) *CatalogHandler {
	return &CatalogHandler{uc: uc, restaurant: restaurant}
}

// Storefront godoc
// @Summary      Identidad del restaurante (nombre, colores, mensaje de bienvenida)
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  dto.StorefrontResponse
// @Router       /api/storefront [get]
func (h *CatalogHandler) Storefront(c *fiber.Ctx) error {
	return c.JSON(dto.StorefrontResponse{
		Name:           h.restaurant.Name,
		WhatsAppNumber: h.restaurant.WhatsAppNumber,
		WelcomeMessage: h.restaurant.WelcomeMessage,
		PrimaryColor:   h.restaurant.PrimaryColor,
		SecondaryColor: h.restaurant.SecondaryColor,
	})
}

// Catalog godoc
// @Summary      Grilla del catálogo (solo productos disponibles)
// @Tags         storefront
// @Produce      json
// @Param        category  query  string  false  "Categoría"  default(all)
// @Success      200  {object}  dto.CatalogView
// @Router       /api/catalog [get]
func (h *CatalogHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(h.uc.Catalog(c.Query("category", "all")))
}

// Carousel godoc
// @Summary      Slides promocionales (promoción + disponible)
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  dto.CarouselView
// @Router       /api/carousel [get]
func (h *CatalogHandler) Carousel(c *fiber.Ctx) error {
	return c.JSON(h.uc.Carousel())
}
