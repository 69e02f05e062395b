package dto

import "github.com/shopspring/decimal"

// StorefrontResponse identidad estática del restaurante para la portada.
type StorefrontResponse struct {
	Name           string `json:"restaurant_name"`
	WhatsAppNumber string `json:"whatsapp_number"`
	WelcomeMessage string `json:"welcome_message"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// CatalogItemView tarjeta de producto del catálogo público.
type CatalogItemView struct {
	ID            string          `json:"id"`
	Name          string          `json:"product_name"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	Promotion     bool            `json:"promotion"`
	OriginalPrice decimal.Decimal `json:"original_price,omitempty"`
}

// CatalogView grilla del catálogo: solo productos disponibles, opcionalmente
// filtrados por categoría.
type CatalogView struct {
	Category string            `json:"category"` // "all" cuando no hay filtro
	Items    []CatalogItemView `json:"items"`
}

// CarouselView slides promocionales: productos en promoción y disponibles.
type CarouselView struct {
	Slides []CatalogItemView `json:"slides"`
}
