package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/domain"
)

// DefaultProductImage imagen de relleno (SVG embebido) para productos creados sin imagen.
const DefaultProductImage = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iNDAwIiBoZWlnaHQ9IjMwMCIgdmlld0JveD0iMCAwIDQwMCAzMDAiIGZpbGw9Im5vbmUiIHhtbG5zPSJodHRwOi8vd3d3LnczLm9yZy8yMDAwL3N2ZyI+PHJlY3Qgd2lkdGg9IjQwMCIgaGVpZ2h0PSIzMDAiIGZpbGw9IiNGNUY1RjUiLz48dGV4dCB4PSIyMDAiIHk9IjE1MCIgdGV4dC1hbmNob3I9Im1pZGRsZSIgZm9udC1mYW1pbHk9IkFyaWFsIiBmb250LXNpemU9IjI0IiBmaWxsPSIjOTk5Ij7imqAgUHJvZHV0byDimqA8L3RleHQ+PC9zdmc+"

// Product representa un ítem del catálogo del restaurante.
// OriginalPrice solo tiene significado cuando Promotion es true (precio antes del descuento).
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"product_name"`
	Category      string          `json:"category"` // burgers, pizzas, bebidas, ...
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"` // URL externa o data-URL embebida
	Promotion     bool            `json:"promotion"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Available     bool            `json:"available"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Validate verifica las invariantes del producto: precio no negativo y,
// en promoción, precio original mayor o igual al precio actual.
func (p Product) Validate() error {
	if p.Name == "" {
		return domain.ErrInvalidInput
	}
	if p.Price.IsNegative() {
		return domain.ErrInvalidInput
	}
	if p.Promotion && !p.OriginalPrice.IsZero() && p.OriginalPrice.LessThan(p.Price) {
		return domain.ErrInvalidInput
	}
	return nil
}
