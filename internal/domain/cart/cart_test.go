package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/cart"
)

// Agregar dos veces el mismo producto fusiona en una sola línea con cantidad 2.
func TestCart_AddMismoProducto_FusionaLinea(t *testing.T) {
	c := cart.New()
	c.Add("p1")
	c.Add("p1")

	require.Equal(t, 1, c.Len(), "debe haber una sola línea para el mismo producto")
	lines := c.Lines()
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, c.ItemCount())
}

// Productos distintos conservan el orden de inserción.
func TestCart_AddProductosDistintos_OrdenDeInsercion(t *testing.T) {
	c := cart.New()
	c.Add("p1")
	c.Add("p2")
	c.Add("p1")

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "p2", lines[1].ProductID)
	assert.Equal(t, 1, lines[1].Quantity)
}

// Bajar la cantidad hasta cero elimina la línea: nunca queda negativa.
func TestCart_ChangeQuantity_CeroEliminaLinea(t *testing.T) {
	c := cart.New()
	c.Add("p1")
	c.Add("p2")

	require.NoError(t, c.ChangeQuantity(0, -1))
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID)
}

// Un delta muy negativo también elimina, sin dejar cantidad negativa.
func TestCart_ChangeQuantity_DeltaMuyNegativoElimina(t *testing.T) {
	c := cart.New()
	c.Add("p1")
	c.Add("p1")
	c.Add("p1")

	require.NoError(t, c.ChangeQuantity(0, -10))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.ItemCount())
}

// Índice fuera de rango es entrada inválida.
func TestCart_ChangeQuantity_IndiceFueraDeRango(t *testing.T) {
	c := cart.New()
	c.Add("p1")

	assert.ErrorIs(t, c.ChangeQuantity(5, 1), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.ChangeQuantity(-1, 1), domain.ErrInvalidInput)
}

// Lines devuelve una copia: mutar el resultado no toca el carrito.
func TestCart_Lines_DevuelveCopia(t *testing.T) {
	c := cart.New()
	c.Add("p1")

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.ItemCount())
}

// Clear vacía el carrito.
func TestCart_Clear(t *testing.T) {
	c := cart.New()
	c.Add("p1")
	c.Add("p2")

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Lines())
}
