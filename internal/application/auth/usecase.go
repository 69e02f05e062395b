package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/projection"
	"github.com/jhoicas/restaurante-api/internal/application/session"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminCredentials par fijo de credenciales del administrador. No es un
// registro del almacén y la comparación es en texto plano: comportamiento
// heredado, endurecerlo está fuera de alcance.
type AdminCredentials struct {
	Username string
	Password string
}

// AuthUseCase casos de uso de autenticación: registro, login y logout.
type AuthUseCase struct {
	store    repository.RecordStore
	state    *projection.State
	sessions *session.Manager
	admin    AdminCredentials
	jwtCfg   JWTConfig

	// regMu serializa chequeo de unicidad y alta: dos registros simultáneos
	// con el mismo teléfono no pueden pasar ambos el chequeo.
	regMu sync.Mutex
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store repository.RecordStore, state *projection.State, sessions *session.Manager, admin AdminCredentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{store: store, state: state, sessions: sessions, admin: admin, jwtCfg: jwtCfg}
}

// Register crea la cuenta de un cliente. Valida prefijo de Mozambique y
// unicidad del teléfono. La sesión queda anónima: el login es explícito.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	phone := strings.TrimSpace(in.Phone)
	if !strings.HasPrefix(phone, entity.PhonePrefix) {
		return nil, domain.ErrInvalidPhone
	}

	// El almacén notifica de forma síncrona, así el snapshot leído bajo el
	// candado ya incluye cualquier registro previo.
	uc.regMu.Lock()
	defer uc.regMu.Unlock()

	for _, u := range uc.state.Snapshot().Users {
		if u.Phone == phone {
			return nil, domain.ErrPhoneAlreadyExists
		}
	}
	rec, err := uc.store.Create(ctx, entity.NewUserRecord(entity.User{
		Name:     in.Name,
		Phone:    phone,
		Password: in.Password, // texto plano, debilidad heredada
		Role:     entity.RoleCustomer,
	}))
	if err != nil {
		return nil, err
	}
	return toUserResponse(rec.User), nil
}

// Login autentica contra el par fijo de admin primero y luego contra los
// usuarios almacenados (teléfono + contraseña en texto plano). Abre una
// sesión con carrito vacío y devuelve su token.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == uc.admin.Username && in.Password == uc.admin.Password {
		return uc.openSession(nil, entity.RoleAdmin)
	}
	for _, u := range uc.state.Snapshot().Users {
		if u.Phone == in.Username && u.Password == in.Password {
			user := u
			return uc.openSession(&user, entity.RoleCustomer)
		}
	}
	// Credenciales desconocidas: la sesión sigue anónima.
	return nil, domain.ErrInvalidCredentials
}

// Logout cierra la sesión: el carrito y la selección de pago mueren con ella.
func (uc *AuthUseCase) Logout(sessionID string) {
	uc.sessions.Delete(sessionID)
}

func (uc *AuthUseCase) openSession(user *entity.User, role string) (*dto.LoginResponse, error) {
	s := uc.sessions.Create(user, role)
	token, err := jwt.Generate(uc.jwtCfg.Secret, s.ID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		uc.sessions.Delete(s.ID)
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Role:  role,
		Name:  s.CustomerName(),
		User:  toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
