// Package whatsapp implementa el colaborador de mensajería saliente: convierte
// un pedido en un resumen de texto y en un enlace wa.me prellenado. Es un
// hand-off fire-and-forget: el enlace se devuelve al cliente para que lo abra,
// nunca se monitorea la entrega.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// LinkBuilder arma resúmenes de pedido y enlaces de WhatsApp para un restaurante.
type LinkBuilder struct {
	restaurant string
	number     string // número destino en dígitos, sin '+'
}

// NewLinkBuilder construye el colaborador. number admite el prefijo "+" y
// separadores; se normaliza a solo dígitos para el enlace.
func NewLinkBuilder(restaurant, number string) *LinkBuilder {
	return &LinkBuilder{restaurant: restaurant, number: digitsOnly(number)}
}

// Message arma el resumen multilínea del pedido en el formato del restaurante:
// encabezado, cliente, teléfono, método de pago, líneas "Nx producto - subtotal MT"
// y total.
func (b *LinkBuilder) Message(o *entity.Order) string {
	var items strings.Builder
	for i, it := range o.Items {
		if i > 0 {
			items.WriteString("\n")
		}
		fmt.Fprintf(&items, "%dx %s - %s MT", it.Quantity, it.ProductName, it.Subtotal.StringFixed(2))
	}
	return fmt.Sprintf(
		"🍔 *Novo Pedido - %s*\n\n*Cliente:* %s\n*Telefone:* %s\n*Pagamento:* %s\n\n*Itens:*\n%s\n\n*Total:* %s MT",
		b.restaurant, o.CustomerName, o.CustomerPhone, o.PaymentMethod, items.String(), o.Total.StringFixed(2),
	)
}

// OrderLink devuelve el enlace wa.me con el resumen del pedido ya codificado.
func (b *LinkBuilder) OrderLink(o *entity.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.number, url.QueryEscape(b.Message(o)))
}

func digitsOnly(s string) string {
	var out strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out.WriteRune(r)
		}
	}
	return out.String()
}
