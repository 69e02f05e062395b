package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest entrada para agregar un producto al carrito.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// ChangeQuantityRequest entrada para sumar delta a la cantidad de una línea.
// Un resultado <= 0 elimina la línea.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// SelectPaymentRequest entrada para elegir el método de pago del checkout.
type SelectPaymentRequest struct {
	Method string `json:"method" validate:"required"`
}

// CartLineView línea del carrito resuelta contra el catálogo vigente.
type CartLineView struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"product_name"`
	ImageURL  string          `json:"image_url"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartView snapshot presentacional del carrito de la sesión.
type CartView struct {
	CustomerName string          `json:"customer_name"`
	Lines        []CartLineView  `json:"lines"`
	ItemCount    int             `json:"item_count"` // suma de cantidades, para el badge
	Total        decimal.Decimal `json:"total"`
	Payment      string          `json:"payment_method,omitempty"`
}

// CheckoutResponse resultado del checkout: el pedido creado y el enlace de
// WhatsApp prellenado que el cliente debe abrir (hand-off fire-and-forget).
type CheckoutResponse struct {
	Order       OrderResponse `json:"order"`
	WhatsAppURL string        `json:"whatsapp_url"`
}
