// Package pdf implementa la generación del recibo gráfico de un pedido
// para el panel admin.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Restaurante         │ Pedido #N      │
//	│  ───────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Teléfono / Pago            │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Cant | Produto | P.Unit | Subtotal    │
//	│  ───────────────────────────────────────────  │
//	│  TOTAL                                        │
//	│  FOOTER: contacto WhatsApp                    │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 234, Green: 29, Blue: 44} // rojo del restaurante
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa usecase.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateOrderPDF genera el recibo del pedido y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.Order,
	restaurantName, contactNumber string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Pedido #%d", order.Number), true).
		WithAuthor(restaurantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, restaurantName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(contactNumber))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del restaurante (izq) y número + fecha del pedido (der).
func headerRow(order *entity.Order, restaurantName string) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(restaurantName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de pedido", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("PEDIDO #%d", order.Number), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New(fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente y método de pago.
func customerRow(order *entity.Order) core.Row {
	return row.New(12).Add(
		col.New(7).Add(
			text.New("Cliente: "+order.CustomerName, props.Text{Size: 9, Top: 1}),
			text.New("Telefone: "+order.CustomerPhone, props.Text{Size: 9, Top: 6, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Pagamento: "+order.PaymentMethod, props.Text{Size: 9, Top: 1, Align: align.Right}),
			text.New("Estado: "+order.Status, props.Text{Size: 9, Top: 6, Align: align.Right, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(6).Add(
		col.New(2).Add(text.New("Cant", header)),
		col.New(5).Add(text.New("Produto", header)),
		col.New(2).Add(text.New("P.Unit", propsRight(header))),
		col.New(3).Add(text.New("Subtotal", propsRight(header))),
	)
}

func tableItemRows(items []entity.OrderItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	cell := props.Text{Size: 8, Top: 1}
	for _, it := range items {
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%dx", it.Quantity), cell)),
			col.New(5).Add(text.New(it.ProductName, cell)),
			col.New(2).Add(text.New(it.UnitPrice.StringFixed(2), propsRight(cell))),
			col.New(3).Add(text.New(it.Subtotal.StringFixed(2)+" MT", propsRight(cell))),
		))
	}
	return rows
}

func totalRow(order *entity.Order) core.Row {
	return row.New(8).Add(
		col.New(7),
		col.New(5).Add(
			text.New("TOTAL: "+order.Total.StringFixed(2)+" MT", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

func footerRow(contactNumber string) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New("WhatsApp: "+contactNumber, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			}),
		),
	)
}

func propsRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}
