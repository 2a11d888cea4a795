package dto

// ErrorResponse cuerpo de error HTTP. Error duplica Message para clientes que leen "error".
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewError construye un ErrorResponse con Error = Message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message, Error: message}
}

// MessageResponse respuesta simple de confirmación (p. ej. delete).
type MessageResponse struct {
	Message string `json:"message"`
}
