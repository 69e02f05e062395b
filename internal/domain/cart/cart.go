// Package cart implementa el agregado de carrito: una lista en memoria,
// exclusiva de la sesión, de pares (producto, cantidad). Nunca se persiste;
// nace vacío en cada login y muere en logout o tras un checkout exitoso.
package cart

import "github.com/jhoicas/restaurante-api/internal/domain"

// Line una línea del carrito. Referencia al producto vivo por identificador;
// los datos (nombre, precio) se resuelven contra el snapshot del catálogo y
// solo se copian al crear el pedido.
type Line struct {
	ProductID string
	Quantity  int // siempre >= 1; llegar a 0 elimina la línea
}

// Cart lista de líneas en orden de inserción, con clave por identidad de
// producto: agregar un producto ya presente incrementa su cantidad.
type Cart struct {
	lines []Line
}

// New crea un carrito vacío.
func New() *Cart {
	return &Cart{}
}

// Add agrega una unidad del producto. Si ya hay una línea para ese producto
// incrementa su cantidad; si no, inserta una línea nueva al final.
func (c *Cart) Add(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{ProductID: productID, Quantity: 1})
}

// ChangeQuantity suma delta a la cantidad de la línea en la posición index
// (orden de inserción). Si el resultado es <= 0 la línea se elimina: la
// cantidad nunca queda negativa.
func (c *Cart) ChangeQuantity(index, delta int) error {
	if index < 0 || index >= len(c.lines) {
		return domain.ErrInvalidInput
	}
	c.lines[index].Quantity += delta
	if c.lines[index].Quantity <= 0 {
		c.lines = append(c.lines[:index], c.lines[index+1:]...)
	}
	return nil
}

// ItemCount suma de cantidades de todas las líneas (para el badge del carrito).
func (c *Cart) ItemCount() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Len número de líneas.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear vacía el carrito (tras checkout exitoso o logout).
func (c *Cart) Clear() {
	c.lines = nil
}
