package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio del backend (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUserAlreadyExists = errors.New("User already exists!")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrCategoryNotFound  = errors.New("la categoría no existe")
)

// ErrCorruptedSession identidad persistida ilegible; se limpia en silencio y nunca llega al usuario.
var ErrCorruptedSession = errors.New("sesión persistida corrupta")

// AuthenticationError credenciales inválidas o fallo del transporte de auth durante login/signup.
// Message se muestra tal cual al usuario.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string { return e.Message }
func (e *AuthenticationError) Unwrap() error { return e.Err }

// AuthorizationDeniedError rechazo del gate de rol en el cliente; nunca llega al transporte.
type AuthorizationDeniedError struct {
	Action   string // create, edit, delete
	Resource string // category, product
}

func (e *AuthorizationDeniedError) Error() string {
	return fmt.Sprintf("You do not have the authority to %s a %s. Admin role required.", e.Action, e.Resource)
}

// ValidationError campos de formulario faltantes o mal formados, detectado antes de la red.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// TransportError fallo de red o del servidor en list/create/update/delete.
// Status es 0 cuando no hubo respuesta; Message es el mensaje del servidor (puede estar vacío).
type TransportError struct {
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("request failed (status %d): %s", e.Status, e.Message)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return fmt.Sprintf("request failed: %v", e.Err)
	default:
		return fmt.Sprintf("request failed (status %d)", e.Status)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerMessage devuelve el mensaje que el servidor envió para err, o "" si no lo hay.
func ServerMessage(err error) string {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Message
	}
	return ""
}
