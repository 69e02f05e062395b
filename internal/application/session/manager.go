// Package session mantiene el estado de sesión en memoria: a lo sumo una
// identidad autenticada por token, con su carrito y su método de pago
// seleccionado. Nada de esto se persiste; un reinicio del proceso olvida
// todas las sesiones y el logout destruye carrito y selección.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-api/internal/domain/cart"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// Session identidad autenticada con su estado transitorio asociado.
// Para el admin User es nil (no existe como registro, solo como credencial fija).
type Session struct {
	ID      string
	User    *entity.User
	Role    string // entity.RoleAdmin | entity.RoleCustomer
	Cart    *cart.Cart
	Payment string // etiqueta del método de pago seleccionado, "" = ninguno

	// mu serializa las operaciones de carrito/pago de la sesión: el modelo es
	// una acción de usuario a la vez, pero el servidor HTTP es concurrente.
	mu sync.Mutex
}

// Lock toma el candado de la sesión.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock libera el candado de la sesión.
func (s *Session) Unlock() { s.mu.Unlock() }

// CustomerName nombre a mostrar de la identidad.
func (s *Session) CustomerName() string {
	if s.User != nil {
		return s.User.Name
	}
	if s.Role == entity.RoleAdmin {
		return "Administrador"
	}
	return ""
}

// CustomerPhone teléfono de la identidad (vacío para admin).
func (s *Session) CustomerPhone() string {
	if s.User != nil {
		return s.User.Phone
	}
	return ""
}

// Manager registro de sesiones vivas, indexadas por identificador.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager construye un registro vacío.
func NewManager() *Manager {
	return &Manager{sessions: map[string]*Session{}}
}

// Create abre una sesión nueva con carrito vacío y devuelve su identificador.
func (m *Manager) Create(user *entity.User, role string) *Session {
	s := &Session{
		ID:   uuid.New().String(),
		User: user,
		Role: role,
		Cart: cart.New(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get devuelve la sesión viva con ese identificador, si existe.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Delete cierra la sesión: el token asociado deja de ser válido aunque el JWT
// no haya expirado, y el carrito muere con ella.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
