package ports

// Severity nivel de una notificación al usuario.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier muestra mensajes de éxito o error al usuario (toast, terminal, ...).
type Notifier interface {
	Notify(message string, severity Severity)
}

// Confirmer pide una confirmación sí/no síncrona antes de una acción destructiva.
type Confirmer interface {
	Confirm(prompt string) bool
}
