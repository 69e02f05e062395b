package entity

import "time"

// Roles válidos para una sesión.
// El admin no existe como registro: es un par de credenciales fijo en configuración.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User representa un cliente registrado del restaurante.
// Los usuarios solo se crean vía registro; nunca se actualizan ni eliminan.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`    // debe iniciar con el prefijo "+258"
	Password  string    `json:"password"` // texto plano: debilidad conocida del sistema original, fuera de alcance endurecerla
	Role      string    `json:"role"`     // siempre "customer" para registros persistidos
	CreatedAt time.Time `json:"created_at"`
}

// PhonePrefix prefijo de país obligatorio para teléfonos de usuarios (Mozambique).
const PhonePrefix = "+258"
