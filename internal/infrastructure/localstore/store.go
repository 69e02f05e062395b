package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.RecordStore = (*Store)(nil)

// Store implementación del puerto RecordStore sobre un bucket KV local.
// Mantiene la colección en memoria como caché de lectura; cada mutación
// persiste la colección entera bajo una sola clave y notifica el estado
// completo a los suscriptores. Sin deltas, sin reintentos: un intento por
// operación, todo-o-nada contra la colección completa.
type Store struct {
	kv  *KV
	key string
	ids repository.IDGenerator
	now func() time.Time

	mu      sync.Mutex
	loaded  bool
	records []entity.Record
	subs    []repository.Subscriber
}

// New construye el almacén. now permite inyectar el reloj en tests.
func New(kv *KV, key string, ids repository.IDGenerator, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{kv: kv, key: key, ids: ids, now: now}
}

// Subscribe registra un suscriptor de cambios. Debe llamarse antes de
// Initialize para recibir la notificación inicial.
func (s *Store) Subscribe(sub repository.Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
}

// Initialize carga la colección persistida (clave ausente -> lista vacía)
// y notifica a los suscriptores una vez.
func (s *Store) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		return err
	}
	records := []entity.Record{}
	if ok && len(raw) > 0 {
		if err := json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("localstore: colección corrupta bajo %q: %w", s.key, err)
		}
	}
	s.records = records
	s.loaded = true
	s.notifyLocked()
	return nil
}

// Create asigna identificador único y fecha de creación, agrega el registro al
// final, persiste la colección y notifica. Devuelve el registro ya estampado.
func (s *Store) Create(ctx context.Context, rec entity.Record) (entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return entity.Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec = rec.Clone()
	rec.Stamp(s.ids.NewID(), s.now())
	if err := rec.Validate(); err != nil {
		return entity.Record{}, err
	}
	next := append(s.cloneLocked(), rec)
	if err := s.persist(next); err != nil {
		return entity.Record{}, err
	}
	s.records = next
	s.notifyLocked()
	return rec.Clone(), nil
}

// Update reemplaza el registro con el mismo identificador, preservando su
// fecha de creación. Si el id no existe devuelve (false, nil): no-op, sin error.
func (s *Store) Update(ctx context.Context, rec entity.Record) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(rec.ID())
	if idx < 0 {
		return false, nil
	}
	rec = rec.Clone()
	rec.Stamp(rec.ID(), s.records[idx].CreatedAt())
	if err := rec.Validate(); err != nil {
		return false, err
	}
	next := s.cloneLocked()
	next[idx] = rec
	if err := s.persist(next); err != nil {
		return false, err
	}
	s.records = next
	s.notifyLocked()
	return true, nil
}

// Delete elimina el registro con el identificador dado. Id ausente -> (false, nil).
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return false, nil
	}
	next := s.cloneLocked()
	next = append(next[:idx], next[idx+1:]...)
	if err := s.persist(next); err != nil {
		return false, err
	}
	s.records = next
	s.notifyLocked()
	return true, nil
}

// Records devuelve una copia de la colección actual.
func (s *Store) Records(ctx context.Context) ([]entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneLocked(), nil
}

func (s *Store) indexOfLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, r := range s.records {
		if r.ID() == id {
			return i
		}
	}
	return -1
}

func (s *Store) cloneLocked() []entity.Record {
	out := make([]entity.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}
	return out
}

func (s *Store) persist(records []entity.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("localstore: serializar colección: %w", err)
	}
	return s.kv.Set(s.key, data)
}

// notifyLocked entrega a cada suscriptor su propia copia del estado completo,
// de forma síncrona: la mutación no termina hasta que las vistas derivadas
// fueron recalculadas.
func (s *Store) notifyLocked() {
	for _, sub := range s.subs {
		sub.OnDataChanged(s.cloneLocked())
	}
}
