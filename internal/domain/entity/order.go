package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado inicial (y único, no hay transiciones en alcance) de un pedido.
const OrderStatusPending = "pending"

// OrderItem línea de pedido congelada al momento del checkout.
// Copia nombre y precio unitario del producto: el pedido histórico no cambia
// aunque el producto se modifique o elimine después.
type OrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Order representa un pedido enviado. Number se deriva del instante de creación
// (milisegundos Unix) y es único dentro del almacén; los pedidos nunca se
// actualizan ni eliminan en alcance.
type Order struct {
	ID            string          `json:"id"`
	Number        int64           `json:"order_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Items         []OrderItem     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
