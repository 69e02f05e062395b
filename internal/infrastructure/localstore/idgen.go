package localstore

import (
	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.IDGenerator = (*UUIDGenerator)(nil)

// UUIDGenerator genera identificadores UUID v4. Reemplaza la derivación por
// reloj del sistema original, cuya unicidad no estaba garantizada.
type UUIDGenerator struct{}

// NewUUIDGenerator construye el generador.
func NewUUIDGenerator() *UUIDGenerator { return &UUIDGenerator{} }

// NewID devuelve un UUID v4 nuevo.
func (g *UUIDGenerator) NewID() string {
	return uuid.New().String()
}
