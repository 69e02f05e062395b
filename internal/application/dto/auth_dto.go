package dto

import "time"

// RegisterRequest entrada para crear una cuenta de cliente.
// El teléfono hace de usuario: debe iniciar con "+258" y ser único.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para login: usuario ("admin" o teléfono) + contraseña.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token de sesión.
type LoginResponse struct {
	Token string        `json:"token"`
	Role  string        `json:"role"`
	Name  string        `json:"name"`
	User  *UserResponse `json:"user,omitempty"` // nil para admin
}
