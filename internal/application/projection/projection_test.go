package projection_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/projection"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// Partition separa la colección plana en vistas tipadas, preservando el orden
// relativo dentro de cada etiqueta.
func TestPartition_SeparaPorEtiqueta(t *testing.T) {
	records := []entity.Record{
		entity.NewProductRecord(entity.Product{Name: "Hambúrguer", Price: decimal.NewFromInt(150)}),
		entity.NewUserRecord(entity.User{Name: "Ana", Phone: "+258841234567"}),
		entity.NewProductRecord(entity.Product{Name: "Pizza", Price: decimal.NewFromInt(350)}),
		entity.NewOrderRecord(entity.Order{Number: 100}),
	}

	snap := projection.Partition(records)

	require.Len(t, snap.Products, 2)
	assert.Equal(t, "Hambúrguer", snap.Products[0].Name)
	assert.Equal(t, "Pizza", snap.Products[1].Name)
	require.Len(t, snap.Users, 1)
	assert.Equal(t, "Ana", snap.Users[0].Name)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, int64(100), snap.Orders[0].Number)
}

// Colección vacía produce vistas vacías, sin pánico.
func TestPartition_ColeccionVacia(t *testing.T) {
	snap := projection.Partition(nil)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Orders)
}

// State recalcula el snapshot completo con cada notificación: una segunda
// notificación reemplaza a la primera, no la acumula.
func TestState_RecalculaCompletoEnCadaNotificacion(t *testing.T) {
	state := projection.NewState()

	state.OnDataChanged([]entity.Record{
		entity.NewProductRecord(entity.Product{Name: "Hambúrguer", Price: decimal.NewFromInt(150)}),
		entity.NewProductRecord(entity.Product{Name: "Pizza", Price: decimal.NewFromInt(350)}),
	})
	require.Len(t, state.Snapshot().Products, 2)

	state.OnDataChanged([]entity.Record{
		entity.NewProductRecord(entity.Product{Name: "Pizza", Price: decimal.NewFromInt(350)}),
	})
	snap := state.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Pizza", snap.Products[0].Name)
}

// Snapshot entrega copias: mutar el resultado no afecta lecturas posteriores.
func TestState_SnapshotDevuelveCopias(t *testing.T) {
	state := projection.NewState()
	state.OnDataChanged([]entity.Record{
		entity.NewProductRecord(entity.Product{Name: "Pizza", Price: decimal.NewFromInt(350)}),
	})

	first := state.Snapshot()
	first.Products[0].Name = "mutado"

	assert.Equal(t, "Pizza", state.Snapshot().Products[0].Name)
}
