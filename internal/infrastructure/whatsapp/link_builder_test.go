package whatsapp_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/whatsapp"
)

func sampleOrder() *entity.Order {
	return &entity.Order{
		Number:        1722513600000,
		CustomerName:  "Ana Macamo",
		CustomerPhone: "+258841234567",
		PaymentMethod: "M-Pesa",
		Items: []entity.OrderItem{
			{
				ProductID:   "p1",
				ProductName: "Hambúrguer Clássico",
				UnitPrice:   decimal.NewFromInt(150),
				Quantity:    2,
				Subtotal:    decimal.NewFromInt(300),
			},
			{
				ProductID:   "p2",
				ProductName: "Coca-Cola",
				UnitPrice:   decimal.NewFromInt(40),
				Quantity:    1,
				Subtotal:    decimal.NewFromInt(40),
			},
		},
		Total:  decimal.NewFromInt(340),
		Status: entity.OrderStatusPending,
	}
}

// El resumen sigue el formato del restaurante: encabezado, cliente, teléfono,
// pago, líneas "Nx producto - subtotal MT" y total con dos decimales.
func TestMessage_FormatoDelResumen(t *testing.T) {
	b := whatsapp.NewLinkBuilder("Sabor da Esquina", "+258822937027")

	msg := b.Message(sampleOrder())

	assert.True(t, strings.HasPrefix(msg, "🍔 *Novo Pedido - Sabor da Esquina*"), "el encabezado lleva el nombre del restaurante")
	assert.Contains(t, msg, "*Cliente:* Ana Macamo")
	assert.Contains(t, msg, "*Telefone:* +258841234567")
	assert.Contains(t, msg, "*Pagamento:* M-Pesa")
	assert.Contains(t, msg, "2x Hambúrguer Clássico - 300.00 MT")
	assert.Contains(t, msg, "1x Coca-Cola - 40.00 MT")
	assert.True(t, strings.HasSuffix(msg, "*Total:* 340.00 MT"))
}

// El enlace apunta a wa.me con el número en solo dígitos y el resumen
// URL-codificado en el parámetro text.
func TestOrderLink_NumeroNormalizadoYTextoCodificado(t *testing.T) {
	b := whatsapp.NewLinkBuilder("Sabor da Esquina", "+258 82 293 7027")

	link := b.OrderLink(sampleOrder())

	require.True(t, strings.HasPrefix(link, "https://wa.me/258822937027?text="), "el número pierde '+' y separadores")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Equal(t, b.Message(sampleOrder()), text, "el texto decodificado debe ser el resumen exacto")
}
