package entity

import (
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
)

// RecordKind discrimina el tipo de un registro dentro de la colección plana.
type RecordKind string

// Tipos de registro válidos.
const (
	KindUser    RecordKind = "user"
	KindProduct RecordKind = "product"
	KindOrder   RecordKind = "order"
)

// Record es la envoltura etiquetada con la que el almacén persiste la colección:
// una unión discriminada por Kind donde exactamente un payload es no nulo.
// El identificador y la fecha de creación viven en el payload; el almacén los
// asigna al crear y nunca los reutiliza.
type Record struct {
	Kind    RecordKind `json:"type"`
	User    *User      `json:"user,omitempty"`
	Product *Product   `json:"product,omitempty"`
	Order   *Order     `json:"order,omitempty"`
}

// NewUserRecord envuelve un usuario en un registro etiquetado.
func NewUserRecord(u User) Record {
	return Record{Kind: KindUser, User: &u}
}

// NewProductRecord envuelve un producto en un registro etiquetado.
func NewProductRecord(p Product) Record {
	return Record{Kind: KindProduct, Product: &p}
}

// NewOrderRecord envuelve un pedido en un registro etiquetado.
func NewOrderRecord(o Order) Record {
	return Record{Kind: KindOrder, Order: &o}
}

// ID devuelve el identificador del payload, o cadena vacía si aún no fue asignado.
func (r Record) ID() string {
	switch r.Kind {
	case KindUser:
		if r.User != nil {
			return r.User.ID
		}
	case KindProduct:
		if r.Product != nil {
			return r.Product.ID
		}
	case KindOrder:
		if r.Order != nil {
			return r.Order.ID
		}
	}
	return ""
}

// CreatedAt devuelve la fecha de creación del payload.
func (r Record) CreatedAt() time.Time {
	switch r.Kind {
	case KindUser:
		if r.User != nil {
			return r.User.CreatedAt
		}
	case KindProduct:
		if r.Product != nil {
			return r.Product.CreatedAt
		}
	case KindOrder:
		if r.Order != nil {
			return r.Order.CreatedAt
		}
	}
	return time.Time{}
}

// Stamp fija identificador y fecha de creación en el payload.
// Lo invoca el almacén en Create; el resto del código no debe llamarlo.
func (r *Record) Stamp(id string, at time.Time) {
	switch r.Kind {
	case KindUser:
		if r.User != nil {
			r.User.ID = id
			r.User.CreatedAt = at
		}
	case KindProduct:
		if r.Product != nil {
			r.Product.ID = id
			r.Product.CreatedAt = at
		}
	case KindOrder:
		if r.Order != nil {
			r.Order.ID = id
			r.Order.CreatedAt = at
		}
	}
}

// Validate verifica que el registro tenga exactamente el payload que su etiqueta anuncia.
func (r Record) Validate() error {
	switch r.Kind {
	case KindUser:
		if r.User == nil || r.Product != nil || r.Order != nil {
			return domain.ErrInvalidInput
		}
	case KindProduct:
		if r.Product == nil || r.User != nil || r.Order != nil {
			return domain.ErrInvalidInput
		}
		return r.Product.Validate()
	case KindOrder:
		if r.Order == nil || r.User != nil || r.Product != nil {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// Clone devuelve una copia profunda del registro, para que los snapshots
// entregados a los suscriptores no compartan memoria con el almacén.
func (r Record) Clone() Record {
	out := Record{Kind: r.Kind}
	if r.User != nil {
		u := *r.User
		out.User = &u
	}
	if r.Product != nil {
		p := *r.Product
		out.Product = &p
	}
	if r.Order != nil {
		o := *r.Order
		o.Items = append([]OrderItem(nil), r.Order.Items...)
		out.Order = &o
	}
	return out
}
