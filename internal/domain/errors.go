package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidPhone       = errors.New("el teléfono debe ser de Mozambique (+258)")
	ErrPhoneAlreadyExists = errors.New("el teléfono ya está registrado")
	ErrInvalidCredentials = errors.New("usuario o contraseña inválidos")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrNoPaymentMethod    = errors.New("ningún método de pago seleccionado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
