// Package authz decide en el cliente si la sesión actual puede ejecutar una acción.
//
// Es una pista de UX, no una frontera de seguridad: evita viajes al servidor y da
// respuesta inmediata, pero la autoridad sigue siendo el backend (RequireRole).
// Nunca se debe omitir una comprobación del servidor porque este gate haya permitido algo.
package authz

import (
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

// Action operación sobre un recurso.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Mutating indica si la acción modifica datos.
func (a Action) Mutating() bool {
	return a == ActionCreate || a == ActionUpdate || a == ActionDelete
}

// verb es el verbo que ve el usuario en el mensaje de denegación.
func (a Action) verb() string {
	if a == ActionUpdate {
		return "edit"
	}
	return string(a)
}

// Decision resultado de CanPerform. Err es nil cuando Allowed.
type Decision struct {
	Allowed bool
	Err     *domain.AuthorizationDeniedError
}

// Reason mensaje de denegación legible, vacío si se permite.
func (d Decision) Reason() string {
	if d.Allowed || d.Err == nil {
		return ""
	}
	return d.Err.Error()
}

// CanPerform aplica la política: toda mutación exige rol ADMIN; la lectura no exige rol
// (ni siquiera sesión). resource es el nombre en singular ("category", "product").
func CanPerform(sess *entity.Session, action Action, resource string) Decision {
	if !action.Mutating() {
		return Decision{Allowed: true}
	}
	if sess.IsAdmin() {
		return Decision{Allowed: true}
	}
	return Decision{Err: &domain.AuthorizationDeniedError{Action: action.verb(), Resource: resource}}
}
