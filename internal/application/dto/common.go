package dto

// ErrorResponse cuerpo de error HTTP. Solo texto legible para el usuario;
// los detalles internos se quedan en los logs.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
