package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/projection"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// OrderUseCase vistas de pedidos del panel admin y su recibo en PDF.
// Los pedidos nunca se actualizan ni eliminan en alcance.
type OrderUseCase struct {
	state      *projection.State
	generator  ReceiptGenerator
	restaurant string
	contact    string
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(state *projection.State, generator ReceiptGenerator, restaurant, contact string) *OrderUseCase {
	return &OrderUseCase{state: state, generator: generator, restaurant: restaurant, contact: contact}
}

// List lista todos los pedidos, más reciente primero.
func (uc *OrderUseCase) List() *dto.OrderListResponse {
	orders := uc.state.Snapshot().Orders
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderResponse(&orders[i]))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}
}

// ReceiptPDF genera el recibo PDF del pedido. Retorna domain.ErrNotFound si
// el id no existe.
func (uc *OrderUseCase) ReceiptPDF(ctx context.Context, id string) (pdf []byte, filename string, err error) {
	snap := uc.state.Snapshot()
	var order *entity.Order
	for i := range snap.Orders {
		if snap.Orders[i].ID == id {
			order = &snap.Orders[i]
			break
		}
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err = uc.generator.GenerateOrderPDF(ctx, order, uc.restaurant, uc.contact)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar PDF: %w", err)
	}
	return pdf, fmt.Sprintf("pedido-%d.pdf", order.Number), nil
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.ProductName,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal,
		})
	}
	return dto.OrderResponse{
		ID:            o.ID,
		Number:        o.Number,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Items:         items,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}
