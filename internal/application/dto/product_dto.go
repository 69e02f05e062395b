package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (solo admin).
type CreateProductRequest struct {
	Name          string          `json:"product_name" validate:"required,min=1,max=200"`
	Category      string          `json:"category" validate:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"` // vacío -> imagen de relleno
	Promotion     bool            `json:"promotion"`
	OriginalPrice decimal.Decimal `json:"original_price"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name          *string          `json:"product_name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	ImageURL      *string          `json:"image_url"`
	Promotion     *bool            `json:"promotion"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Available     *bool            `json:"available"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"product_name"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	Promotion     bool            `json:"promotion"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Available     bool            `json:"available"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ProductListResponse lista de productos (vista admin, sin filtrar disponibilidad).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
