package localstore_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testKey = "restaurant-data"

// seqIDs generador secuencial determinista para los tests.
type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%03d", g.n)
}

// recorder suscriptor que acumula cada estado notificado.
type recorder struct {
	states [][]entity.Record
}

func (r *recorder) OnDataChanged(records []entity.Record) {
	r.states = append(r.states, records)
}

// fixedClock reloj congelado inyectable.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestStore(t *testing.T) (*localstore.Store, *localstore.KV) {
	t.Helper()
	kv, err := localstore.OpenKV(filepath.Join(t.TempDir(), "data", "restaurant.json"))
	require.NoError(t, err)
	store := localstore.New(kv, testKey, &seqIDs{}, fixedClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, store.Initialize(context.Background()))
	return store, kv
}

func productRecord(name string, price int64) entity.Record {
	return entity.NewProductRecord(entity.Product{
		Name:      name,
		Category:  "burgers",
		Price:     decimal.NewFromInt(price),
		Available: true,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests KV
// ──────────────────────────────────────────────────────────────────────────────

// Clave ausente (incluso archivo ausente) no es error: devuelve ok=false.
func TestKV_ClaveAusente(t *testing.T) {
	kv, err := localstore.OpenKV(filepath.Join(t.TempDir(), "nuevo.json"))
	require.NoError(t, err)

	raw, ok, err := kv.Get("no-existe")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestKV_SetLuegoGet(t *testing.T) {
	kv, err := localstore.OpenKV(filepath.Join(t.TempDir(), "datos.json"))
	require.NoError(t, err)

	require.NoError(t, kv.Set("k", []byte(`{"a":1}`)))
	raw, ok, err := kv.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Store — CRUD y persistencia
// ──────────────────────────────────────────────────────────────────────────────

// Create estampa identificador único y fecha de creación.
func TestStore_CreateEstampaIDyFecha(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, productRecord("Hambúrguer", 150))
	require.NoError(t, err)
	second, err := store.Create(ctx, productRecord("Pizza", 350))
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID())
	assert.NotEmpty(t, second.ID())
	assert.NotEqual(t, first.ID(), second.ID(), "los identificadores deben ser únicos")
	assert.False(t, first.CreatedAt().IsZero())
}

// La colección sobrevive un reinicio: un segundo almacén sobre el mismo archivo
// carga lo persistido.
func TestStore_ReinicioRecuperaColeccion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurant.json")
	kv, err := localstore.OpenKV(path)
	require.NoError(t, err)
	store := localstore.New(kv, testKey, &seqIDs{}, nil)
	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))

	created, err := store.Create(ctx, productRecord("Hambúrguer", 150))
	require.NoError(t, err)

	// Simula el reinicio del proceso: KV y almacén nuevos sobre el mismo archivo.
	kv2, err := localstore.OpenKV(path)
	require.NoError(t, err)
	store2 := localstore.New(kv2, testKey, &seqIDs{}, nil)
	require.NoError(t, store2.Initialize(ctx))

	records, err := store2.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, created.ID(), records[0].ID())
	assert.Equal(t, "Hambúrguer", records[0].Product.Name)
	assert.True(t, records[0].Product.Price.Equal(decimal.NewFromInt(150)))
}

// Update reemplaza el registro pero preserva su fecha de creación.
func TestStore_UpdatePreservaFechaDeCreacion(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, productRecord("Hambúrguer", 150))
	require.NoError(t, err)

	modified := created.Clone()
	modified.Product.Price = decimal.NewFromInt(180)
	ok, err := store.Update(ctx, modified)
	require.NoError(t, err)
	require.True(t, ok)

	records, err := store.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Product.Price.Equal(decimal.NewFromInt(180)))
	assert.Equal(t, created.CreatedAt(), records[0].CreatedAt())
}

// Update con el registro ya vigente es idempotente: la colección y el estado
// notificado quedan exactamente iguales.
func TestStore_UpdateConRegistroVigente_Idempotente(t *testing.T) {
	store, _ := newTestStore(t)
	rec := &recorder{}
	store.Subscribe(rec)
	ctx := context.Background()

	created, err := store.Create(ctx, productRecord("Hambúrguer", 150))
	require.NoError(t, err)
	before, err := store.Records(ctx)
	require.NoError(t, err)

	ok, err := store.Update(ctx, created)
	require.NoError(t, err)
	require.True(t, ok)

	after, err := store.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "reescribir el registro vigente no debe cambiar nada observable")

	require.Len(t, rec.states, 2, "Create y Update notifican una vez cada uno")
	assert.Equal(t, rec.states[0], rec.states[1], "el estado notificado tras el update debe ser el mismo")
}

// Update con identificador desconocido es no-op silencioso: (false, nil).
func TestStore_UpdateIDDesconocido_NoOp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	ghost := productRecord("Fantasma", 10)
	ghost.Stamp("no-existe", time.Now())
	ok, err := store.Update(ctx, ghost)
	require.NoError(t, err)
	assert.False(t, ok)

	records, err := store.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// Delete elimina por identificador; id ausente es no-op silencioso.
func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, productRecord("Hambúrguer", 150))
	require.NoError(t, err)

	ok, err := store.Delete(ctx, created.ID())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Delete(ctx, created.ID())
	require.NoError(t, err)
	assert.False(t, ok, "eliminar dos veces debe ser no-op")

	records, err := store.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// Eliminar y luego actualizar el mismo registro no lo resucita.
func TestStore_UpdateTrasDelete_NoResucita(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, productRecord("Hambúrguer", 150))
	require.NoError(t, err)
	_, err = store.Delete(ctx, created.ID())
	require.NoError(t, err)

	ok, err := store.Update(ctx, created)
	require.NoError(t, err)
	assert.False(t, ok)

	records, err := store.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// Un registro inválido no se persiste.
func TestStore_CreateRegistroInvalido(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, productRecord("", 150))
	require.Error(t, err)

	records, err := store.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Store — notificaciones
// ──────────────────────────────────────────────────────────────────────────────

// Cada mutación notifica el estado completo de forma síncrona, y Initialize
// emite la notificación inicial.
func TestStore_NotificaEstadoCompleto(t *testing.T) {
	kv, err := localstore.OpenKV(filepath.Join(t.TempDir(), "restaurant.json"))
	require.NoError(t, err)
	store := localstore.New(kv, testKey, &seqIDs{}, nil)
	rec := &recorder{}
	store.Subscribe(rec)
	ctx := context.Background()

	require.NoError(t, store.Initialize(ctx))
	require.Len(t, rec.states, 1, "Initialize debe notificar una vez")
	assert.Empty(t, rec.states[0])

	created, err := store.Create(ctx, productRecord("Hambúrguer", 150))
	require.NoError(t, err)
	require.Len(t, rec.states, 2, "Create debe notificar al retornar")
	require.Len(t, rec.states[1], 1)
	assert.Equal(t, created.ID(), rec.states[1][0].ID())

	_, err = store.Delete(ctx, created.ID())
	require.NoError(t, err)
	require.Len(t, rec.states, 3)
	assert.Empty(t, rec.states[2])
}

// El suscriptor recibe su propia copia: mutarla no contamina el almacén.
func TestStore_NotificacionEntregaCopia(t *testing.T) {
	store, _ := newTestStore(t)
	rec := &recorder{}
	store.Subscribe(rec)
	ctx := context.Background()

	_, err := store.Create(ctx, productRecord("Hambúrguer", 150))
	require.NoError(t, err)
	require.NotEmpty(t, rec.states)
	rec.states[len(rec.states)-1][0].Product.Name = "mutado"

	records, err := store.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hambúrguer", records[0].Product.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Seed
// ──────────────────────────────────────────────────────────────────────────────

// Primer arranque: colección vacía se siembra con los tres productos demo.
func TestSeed_ColeccionVacia_SiembraDemo(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	n, err := localstore.Seed(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	records, err := store.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	names := make([]string, 0, 3)
	for _, r := range records {
		require.Equal(t, entity.KindProduct, r.Kind)
		names = append(names, r.Product.Name)
	}
	assert.Equal(t, []string{"Hambúrguer Clássico", "Pizza Margherita", "Coca-Cola"}, names)

	// La pizza viene en promoción: 350 rebajado de 400.
	pizza := records[1].Product
	assert.True(t, pizza.Promotion)
	assert.True(t, pizza.Price.Equal(decimal.NewFromInt(350)))
	assert.True(t, pizza.OriginalPrice.Equal(decimal.NewFromInt(400)))
}

// Colección no vacía: la siembra es no-op, incluso si faltan los productos demo.
func TestSeed_ColeccionNoVacia_NoOp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, productRecord("Só um", 10))
	require.NoError(t, err)

	n, err := localstore.Seed(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	records, err := store.Records(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
