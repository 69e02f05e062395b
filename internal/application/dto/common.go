package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NoticeResponse aviso transitorio para el usuario (operación aceptada).
type NoticeResponse struct {
	Message string `json:"message"`
}
