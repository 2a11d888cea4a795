package ports

import (
	"context"

	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

// KeyValueStore almacenamiento durable del lado del cliente (equivalente a localStorage).
// Get devuelve ok=false si la clave no existe.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// SetMany escribe todas las claves o ninguna.
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}

// SessionSource expone la sesión viva a quien necesita decidir permisos.
type SessionSource interface {
	Session() *entity.Session
}
