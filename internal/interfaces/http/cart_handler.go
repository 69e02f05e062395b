package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appcart "github.com/jhoicas/restaurante-api/internal/application/cart"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
)

// CartHandler maneja el carrito de la sesión (solo clientes).
// Los fallos de negocio son avisos recuperables: 4xx con mensaje, sin cambio de estado.
type CartHandler struct {
	uc *appcart.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *appcart.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// View godoc
// @Summary      Ver carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartView
// @Router       /api/cart [get]
func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.uc.View(GetSession(c)))
}

// AddItem godoc
// @Summary      Agregar producto al carrito (misma identidad suma cantidad)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto"
// @Success      200   {object}  dto.CartView
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.AddProduct(GetSession(c), in.ProductID)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// ChangeQuantity godoc
// @Summary      Sumar delta a la cantidad de una línea (<= 0 la elimina)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        index  path  int  true  "Posición de la línea (orden de inserción)"
// @Param        body   body  dto.ChangeQuantityRequest  true  "Delta"
// @Success      200    {object}  dto.CartView
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/cart/items/{index} [patch]
func (h *CartHandler) ChangeQuantity(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "index debe ser numérico"})
	}
	var in dto.ChangeQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeQuantity(GetSession(c), index, in.Delta)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// SelectPayment godoc
// @Summary      Elegir método de pago para el checkout
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectPaymentRequest  true  "Método"
// @Success      200   {object}  dto.NoticeResponse
// @Router       /api/cart/payment [put]
func (h *CartHandler) SelectPayment(c *fiber.Ctx) error {
	var in dto.SelectPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SelectPayment(GetSession(c), in.Method); err != nil {
		return cartError(c, err)
	}
	return c.JSON(dto.NoticeResponse{Message: "Método de pagamento selecionado"})
}

// Checkout godoc
// @Summary      Confirmar pedido: persiste, arma el enlace de WhatsApp y vacía el carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.CheckoutResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.uc.Checkout(c.Context(), GetSession(c))
	if err != nil {
		return cartError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// cartError traduce los errores de dominio del carrito a respuestas HTTP con
// los avisos del sistema original.
func cartError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "Carrinho vazio"})
	case errors.Is(err, domain.ErrNoPaymentMethod):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_PAYMENT_METHOD", Message: "Por favor, selecione o método de pagamento"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Admins não podem fazer pedidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Produto não encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
