// Package cart implementa los casos de uso del carrito de la sesión:
// agregar productos, cambiar cantidades, totales y checkout.
package cart

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/projection"
	"github.com/jhoicas/restaurante-api/internal/application/session"
	"github.com/jhoicas/restaurante-api/internal/domain"
	domaincart "github.com/jhoicas/restaurante-api/internal/domain/cart"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/whatsapp"
)

// CartUseCase opera el carrito de una sesión contra el catálogo vigente.
// El carrito guarda solo (producto, cantidad); nombre y precio se resuelven
// contra el snapshot en cada vista y recién se copian al crear el pedido.
type CartUseCase struct {
	state *projection.State
	store repository.RecordStore
	links *whatsapp.LinkBuilder
	now   func() time.Time

	// checkoutMu serializa la asignación del número de pedido entre sesiones:
	// el número elegido contra el snapshot debe seguir único al persistir.
	checkoutMu sync.Mutex
}

// NewCartUseCase construye el caso de uso. now permite inyectar el reloj en tests.
func NewCartUseCase(state *projection.State, store repository.RecordStore, links *whatsapp.LinkBuilder, now func() time.Time) *CartUseCase {
	if now == nil {
		now = time.Now
	}
	return &CartUseCase{state: state, store: store, links: links, now: now}
}

// AddProduct agrega una unidad del producto al carrito de la sesión.
// Solo clientes autenticados: el admin no hace pedidos.
func (uc *CartUseCase) AddProduct(sess *session.Session, productID string) (*dto.CartView, error) {
	if sess.Role != entity.RoleCustomer {
		return nil, domain.ErrForbidden
	}
	snap := uc.state.Snapshot()
	if findProduct(snap, productID) == nil {
		return nil, domain.ErrNotFound
	}
	sess.Lock()
	defer sess.Unlock()
	sess.Cart.Add(productID)
	return uc.viewLocked(sess, snap), nil
}

// ChangeQuantity suma delta a la línea en la posición index; resultado <= 0
// elimina la línea.
func (uc *CartUseCase) ChangeQuantity(sess *session.Session, index, delta int) (*dto.CartView, error) {
	if sess.Role != entity.RoleCustomer {
		return nil, domain.ErrForbidden
	}
	sess.Lock()
	defer sess.Unlock()
	if err := sess.Cart.ChangeQuantity(index, delta); err != nil {
		return nil, err
	}
	return uc.viewLocked(sess, uc.state.Snapshot()), nil
}

// SelectPayment fija la etiqueta del método de pago para el próximo checkout.
func (uc *CartUseCase) SelectPayment(sess *session.Session, method string) error {
	if sess.Role != entity.RoleCustomer {
		return domain.ErrForbidden
	}
	if method == "" {
		return domain.ErrInvalidInput
	}
	sess.Lock()
	sess.Payment = method
	sess.Unlock()
	return nil
}

// View devuelve el snapshot presentacional del carrito.
func (uc *CartUseCase) View(sess *session.Session) *dto.CartView {
	sess.Lock()
	defer sess.Unlock()
	return uc.viewLocked(sess, uc.state.Snapshot())
}

// Checkout congela las líneas del carrito en un pedido, lo persiste, arma el
// enlace de WhatsApp y vacía carrito y selección de pago. Requiere carrito no
// vacío y un método de pago elegido; los fallos son avisos recuperables, no
// cambian estado.
func (uc *CartUseCase) Checkout(ctx context.Context, sess *session.Session) (*dto.CheckoutResponse, error) {
	if sess.Role != entity.RoleCustomer {
		return nil, domain.ErrForbidden
	}
	sess.Lock()
	defer sess.Unlock()

	snap := uc.state.Snapshot()
	resolved := resolveLines(snap, sess.Cart.Lines())
	if len(resolved) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if sess.Payment == "" {
		return nil, domain.ErrNoPaymentMethod
	}

	items := make([]entity.OrderItem, 0, len(resolved))
	total := decimal.Zero
	for _, l := range resolved {
		sub := l.product.Price.Mul(decimal.NewFromInt(int64(l.quantity)))
		items = append(items, entity.OrderItem{
			ProductID:   l.product.ID,
			ProductName: l.product.Name,
			UnitPrice:   l.product.Price,
			Quantity:    l.quantity,
			Subtotal:    sub,
		})
		total = total.Add(sub)
	}

	order := entity.Order{
		CustomerName:  sess.CustomerName(),
		CustomerPhone: sess.CustomerPhone(),
		Items:         items,
		Total:         total,
		PaymentMethod: sess.Payment,
		Status:        entity.OrderStatusPending,
	}
	link := uc.links.OrderLink(&order)

	// Número y persistencia bajo el mismo candado: el almacén notifica de forma
	// síncrona, así el siguiente checkout ya ve este número en su snapshot.
	uc.checkoutMu.Lock()
	order.Number = uc.nextOrderNumber(uc.state.Snapshot())
	rec, err := uc.store.Create(ctx, entity.NewOrderRecord(order))
	uc.checkoutMu.Unlock()
	if err != nil {
		return nil, err
	}

	sess.Cart.Clear()
	sess.Payment = ""

	return &dto.CheckoutResponse{
		Order:       toOrderResponse(rec.Order),
		WhatsAppURL: link,
	}, nil
}

// nextOrderNumber deriva el número de pedido de los milisegundos Unix del
// instante actual y lo incrementa hasta que sea único dentro del almacén:
// dos pedidos en el mismo milisegundo no colisionan. Llamar con checkoutMu
// tomado.
func (uc *CartUseCase) nextOrderNumber(snap projection.Snapshot) int64 {
	taken := make(map[int64]bool, len(snap.Orders))
	for _, o := range snap.Orders {
		taken[o.Number] = true
	}
	n := uc.now().UnixMilli()
	for taken[n] {
		n++
	}
	return n
}

type resolvedLine struct {
	product  *entity.Product
	quantity int
}

// resolveLines cruza las líneas del carrito con el catálogo vigente.
// Productos eliminados mientras estaban en el carrito se omiten.
func resolveLines(snap projection.Snapshot, lines []domaincart.Line) []resolvedLine {
	out := make([]resolvedLine, 0, len(lines))
	for _, l := range lines {
		if p := findProduct(snap, l.ProductID); p != nil {
			out = append(out, resolvedLine{product: p, quantity: l.Quantity})
		}
	}
	return out
}

func findProduct(snap projection.Snapshot, id string) *entity.Product {
	for i := range snap.Products {
		if snap.Products[i].ID == id {
			return &snap.Products[i]
		}
	}
	return nil
}

func (uc *CartUseCase) viewLocked(sess *session.Session, snap projection.Snapshot) *dto.CartView {
	resolved := resolveLines(snap, sess.Cart.Lines())
	view := &dto.CartView{
		CustomerName: sess.CustomerName(),
		Total:        decimal.Zero,
		Payment:      sess.Payment,
		Lines:        make([]dto.CartLineView, 0, len(resolved)),
	}
	for _, l := range resolved {
		view.ItemCount += l.quantity
		sub := l.product.Price.Mul(decimal.NewFromInt(int64(l.quantity)))
		view.Lines = append(view.Lines, dto.CartLineView{
			ProductID: l.product.ID,
			Name:      l.product.Name,
			ImageURL:  l.product.ImageURL,
			UnitPrice: l.product.Price,
			Quantity:  l.quantity,
			Subtotal:  sub,
		})
		view.Total = view.Total.Add(sub)
	}
	return view
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
