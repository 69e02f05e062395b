// Package projection deriva las vistas tipadas (usuarios, productos, pedidos)
// de la colección plana de registros. La derivación es un filtro puro por
// etiqueta, recalculado completo en cada notificación del almacén: sin
// diffing incremental, sin lógica de migración por campo.
package projection

import (
	"sync"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// Snapshot vistas tipadas derivadas de la colección en un instante dado.
// Es la única fuente de verdad para los renderers; tratar como solo lectura.
type Snapshot struct {
	Users    []entity.User
	Products []entity.Product
	Orders   []entity.Order
}

// Partition particiona la colección plana por etiqueta. Función pura.
func Partition(records []entity.Record) Snapshot {
	var snap Snapshot
	for _, r := range records {
		switch r.Kind {
		case entity.KindUser:
			if r.User != nil {
				snap.Users = append(snap.Users, *r.User)
			}
		case entity.KindProduct:
			if r.Product != nil {
				snap.Products = append(snap.Products, *r.Product)
			}
		case entity.KindOrder:
			if r.Order != nil {
				snap.Orders = append(snap.Orders, *r.Order)
			}
		}
	}
	return snap
}

var _ repository.Subscriber = (*State)(nil)

// State suscriptor del almacén que mantiene el snapshot vigente.
// Se recalcula completo con cada notificación.
type State struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewState construye el estado de proyección (vacío hasta la primera notificación).
func NewState() *State {
	return &State{}
}

// OnDataChanged recalcula la partición con el estado completo recibido.
func (s *State) OnDataChanged(records []entity.Record) {
	snap := Partition(records)
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Snapshot devuelve el snapshot vigente. Los slices se copian para que los
// lectores no compartan memoria con la próxima recomputación.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Users:    append([]entity.User(nil), s.snap.Users...),
		Products: append([]entity.Product(nil), s.snap.Products...),
		Orders:   append([]entity.Order(nil), s.snap.Orders...),
	}
}
