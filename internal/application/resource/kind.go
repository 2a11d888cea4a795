package resource

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fields valores crudos del formulario, por nombre de campo.
type Fields map[string]string

func (f Fields) clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Messages textos que ve el usuario para un tipo de recurso.
type Messages struct {
	LoadFailed      string
	Created         string
	Updated         string
	Deleted         string
	OperationFailed string // fallback si el servidor no envía mensaje
	DeleteFailed    string
	ConfirmDelete   string
}

// NewMessages construye los mensajes estándar para singular/plural ("product", "products").
func NewMessages(singular, plural string) Messages {
	title := cases.Title(language.English).String(singular)
	return Messages{
		LoadFailed:      fmt.Sprintf("Failed to load %s", plural),
		Created:         fmt.Sprintf("%s created successfully!", title),
		Updated:         fmt.Sprintf("%s updated successfully!", title),
		Deleted:         fmt.Sprintf("%s deleted successfully!", title),
		OperationFailed: "Operation failed",
		DeleteFailed:    "Delete failed",
		ConfirmDelete:   fmt.Sprintf("Are you sure you want to delete this %s?", singular),
	}
}

// Kind describe un tipo de recurso: campos, validación y conversión a payload.
// El Controller es el mismo para todos los tipos; solo cambia el Kind.
type Kind[T any, P any] struct {
	Name   string // singular, usado en mensajes de autorización
	Plural string
	Fields []string

	ID         func(T) int64
	Defaults   func() Fields
	FromEntity func(T) Fields
	// Validate devuelve *domain.ValidationError si faltan campos o están mal formados.
	Validate func(Fields) error
	Payload  func(Fields) (P, error)

	Messages Messages
}

func (k Kind[T, P]) hasField(name string) bool {
	for _, f := range k.Fields {
		if f == name {
			return true
		}
	}
	return false
}
