package repository

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// Subscriber recibe la colección completa después de cada mutación del almacén
// (y una vez en Initialize). No hay deltas: siempre estado completo.
type Subscriber interface {
	OnDataChanged(records []entity.Record)
}

// IDGenerator genera identificadores únicos para registros nuevos.
// Inyectado para que los tests puedan usar secuencias deterministas.
type IDGenerator interface {
	NewID() string
}

// RecordStore define el puerto de persistencia sobre la colección plana de
// registros etiquetados (DIP). Cada mutación persiste la colección entera y
// notifica a los suscriptores; la ejecución es síncrona y ordenada, el
// context solo modela la capacidad asíncrona de un futuro backend remoto.
//
// Update y Delete reportan la ausencia del id como resultado booleano, no como
// error: el llamador decide el mensaje.
type RecordStore interface {
	Initialize(ctx context.Context) error
	Create(ctx context.Context, rec entity.Record) (entity.Record, error)
	Update(ctx context.Context, rec entity.Record) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Records(ctx context.Context) ([]entity.Record, error)
	Subscribe(s Subscriber)
}
