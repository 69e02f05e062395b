package auth_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/projection"
	"github.com/jhoicas/restaurante-api/internal/application/session"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/localstore"
	pkgjwt "github.com/jhoicas/restaurante-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "restaurante-api-test"
)

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *session.Manager, *projection.State) {
	t.Helper()
	kv, err := localstore.OpenKV(filepath.Join(t.TempDir(), "restaurant.json"))
	require.NoError(t, err)
	store := localstore.New(kv, "restaurant-data", localstore.NewUUIDGenerator(), nil)
	state := projection.NewState()
	store.Subscribe(state)
	require.NoError(t, store.Initialize(context.Background()))

	sessions := session.NewManager()
	uc := auth.NewAuthUseCase(store, state, sessions,
		auth.AdminCredentials{Username: "admin", Password: "admin"},
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer},
	)
	return uc, sessions, state
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_ClienteNuevo(t *testing.T) {
	uc, _, state := newAuthFixture(t)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Ana Macamo",
		Phone:    "+258841234567",
		Password: "segredo",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Ana Macamo", out.Name)
	assert.Equal(t, entity.RoleCustomer, out.Role)

	users := state.Snapshot().Users
	require.Len(t, users, 1)
	assert.Equal(t, "+258841234567", users[0].Phone)
}

// Teléfono sin prefijo de Mozambique se rechaza sin crear nada.
func TestRegister_TelefonoSinPrefijo(t *testing.T) {
	uc, _, state := newAuthFixture(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Carlos",
		Phone:    "841234567",
		Password: "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)
	assert.Empty(t, state.Snapshot().Users)
}

// El teléfono es la identidad del cliente: registrarlo dos veces falla.
func TestRegister_TelefonoDuplicado(t *testing.T) {
	uc, _, state := newAuthFixture(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Phone: "+258841234567", Password: "a"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Name: "Outra Ana", Phone: "+258841234567", Password: "b"})
	assert.ErrorIs(t, err, domain.ErrPhoneAlreadyExists)
	assert.Len(t, state.Snapshot().Users, 1)
}

// Registros simultáneos con el mismo teléfono: exactamente uno gana, el resto
// recibe el error de duplicado.
func TestRegister_TelefonoDuplicadoConcurrente(t *testing.T) {
	uc, _, state := newAuthFixture(t)
	const intentos = 8

	var wg sync.WaitGroup
	errs := make([]error, intentos)
	for i := 0; i < intentos; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Register(context.Background(), dto.RegisterRequest{
				Name:     fmt.Sprintf("Cliente %d", i),
				Phone:    "+258841234567",
				Password: "segredo",
			})
		}(i)
	}
	wg.Wait()

	creados := 0
	for _, err := range errs {
		if err == nil {
			creados++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrPhoneAlreadyExists)
	}
	assert.Equal(t, 1, creados, "solo un registro debe pasar el chequeo de unicidad")
	assert.Len(t, state.Snapshot().Users, 1)
}

// Registrarse no abre sesión: el login es un paso explícito.
func TestRegister_NoAbreSesion(t *testing.T) {
	uc, sessions, _ := newAuthFixture(t)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Ana", Phone: "+258841234567", Password: "a",
	})
	require.NoError(t, err)
	_, ok := sessions.Get(out.ID)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login / Logout
// ──────────────────────────────────────────────────────────────────────────────

// El par fijo de admin abre sesión de administrador sin registro en el almacén.
func TestLogin_Admin(t *testing.T) {
	uc, sessions, _ := newAuthFixture(t)

	resp, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, resp.Role)
	assert.Equal(t, "Administrador", resp.Name)
	assert.Nil(t, resp.User)

	sessionID, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)

	sess, ok := sessions.Get(sessionID)
	require.True(t, ok)
	assert.Nil(t, sess.User)
	assert.Equal(t, 0, sess.Cart.Len(), "la sesión nace con carrito vacío")
}

// Un cliente entra con su teléfono y contraseña.
func TestLogin_Cliente(t *testing.T) {
	uc, sessions, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Phone: "+258841234567", Password: "segredo"})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Username: "+258841234567", Password: "segredo"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCustomer, resp.Role)
	assert.Equal(t, "Ana", resp.Name)
	require.NotNil(t, resp.User)
	assert.Equal(t, "+258841234567", resp.User.Phone)

	sessionID, _, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	sess, ok := sessions.Get(sessionID)
	require.True(t, ok)
	require.NotNil(t, sess.User)
	assert.Equal(t, "Ana", sess.User.Name)
}

// Credenciales desconocidas: sin sesión, sin token.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Phone: "+258841234567", Password: "segredo"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "+258841234567", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Username: "+258999999999", Password: "segredo"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Logout cierra la sesión: el identificador deja de resolver aunque el JWT
// siga firmado y vigente.
func TestLogout_CierraSesion(t *testing.T) {
	uc, sessions, _ := newAuthFixture(t)

	resp, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)
	sessionID, _, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)

	uc.Logout(sessionID)

	_, ok := sessions.Get(sessionID)
	assert.False(t, ok)
}
