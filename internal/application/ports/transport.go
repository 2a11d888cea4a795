package ports

import (
	"context"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
)

// AuthTransport define el puerto de salida hacia /auth del backend.
// Los errores de transporte llegan como *domain.TransportError.
type AuthTransport interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	Signup(ctx context.Context, in dto.SignupRequest) (*dto.SignupResponse, error)
}

// ResourceTransport define el CRUD remoto de un tipo de recurso.
// T es la entidad que devuelve el servidor y P el payload de escritura.
type ResourceTransport[T any, P any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, payload P) (T, error)
	Update(ctx context.Context, id int64, payload P) (T, error)
	// Patch actualización parcial; expuesta pero no usada por el flujo de formularios.
	Patch(ctx context.Context, id int64, payload any) (T, error)
	Delete(ctx context.Context, id int64) error
}
