package usecase

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// ReceiptGenerator genera la representación gráfica (PDF) de un pedido
// para el panel admin. Implementado en infrastructure/pdf.
type ReceiptGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, restaurantName, contactNumber string) ([]byte, error)
}
