// Package resource implementa el CRUD de pantalla para cualquier tipo de recurso:
// listado, formulario modal crear/editar, borrado con confirmación y notificaciones.
package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-admin/internal/application/authz"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain"
)

// Errores devueltos por el controller. Todos ya fueron notificados o no requieren aviso.
var (
	ErrFormClosed     = errors.New("no hay formulario abierto")
	ErrSubmitInFlight = errors.New("ya hay un envío en curso")
	ErrDeclined       = errors.New("borrado cancelado por el usuario")
	ErrUnknownField   = errors.New("campo desconocido")
)

// Deps colaboradores del controller.
type Deps[T any, P any] struct {
	Transport ports.ResourceTransport[T, P]
	Sessions  ports.SessionSource
	Notifier  ports.Notifier
	Confirmer ports.Confirmer
	Logger    zerolog.Logger
}

// Controller estado de pantalla de un tipo de recurso.
// Los métodos devuelven error solo como señal para el llamador: el usuario ya fue
// notificado por el Notifier cuando correspondía.
type Controller[T any, P any] struct {
	kind      Kind[T, P]
	transport ports.ResourceTransport[T, P]
	sessions  ports.SessionSource
	notifier  ports.Notifier
	confirmer ports.Confirmer
	log       zerolog.Logger

	mu      sync.Mutex
	items   []T
	loading bool
	form    Form[T]
	formGen uint64 // cambia cada vez que se abre o se cierra el formulario
	seq     uint64 // id del refresh más reciente
}

// NewController construye un controller vacío (sin cargar). Llamar Refresh al montar la pantalla.
func NewController[T any, P any](kind Kind[T, P], deps Deps[T, P]) *Controller[T, P] {
	return &Controller[T, P]{
		kind:      kind,
		transport: deps.Transport,
		sessions:  deps.Sessions,
		notifier:  deps.Notifier,
		confirmer: deps.Confirmer,
		log:       deps.Logger.With().Str("resource", kind.Plural).Logger(),
	}
}

// Kind descriptor del recurso.
func (c *Controller[T, P]) Kind() Kind[T, P] { return c.kind }

// Items copia del último listado cargado con éxito.
func (c *Controller[T, P]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loading true mientras hay un refresh pendiente.
func (c *Controller[T, P]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Form copia del estado del formulario.
func (c *Controller[T, P]) Form() Form[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.clone()
}

// Refresh vuelve a pedir el listado. Si se solapan varios refresh, solo el más
// reciente reemplaza items y apaga loading; los anteriores se descartan.
func (c *Controller[T, P]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	c.mu.Unlock()

	items, err := c.transport.List(ctx)

	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		c.log.Debug().Uint64("seq", seq).Msg("refresh obsoleto descartado")
		return nil
	}
	c.loading = false
	if err == nil {
		c.items = items
	}
	c.mu.Unlock()

	if err != nil {
		c.log.Error().Err(err).Msg("listar")
		c.notify(c.kind.Messages.LoadFailed, ports.SeverityError)
		return err
	}
	return nil
}

// OpenCreate abre el formulario vacío con los valores por defecto del tipo.
func (c *Controller[T, P]) OpenCreate() error {
	if err := c.authorize(authz.ActionCreate); err != nil {
		return err
	}
	defaults := Fields{}
	if c.kind.Defaults != nil {
		defaults = c.kind.Defaults()
	}

	c.mu.Lock()
	c.setForm(Form[T]{Mode: ModeCreate, Fields: defaults})
	c.mu.Unlock()
	return nil
}

// OpenEdit abre el formulario precargado con los campos de entity.
func (c *Controller[T, P]) OpenEdit(entity T) error {
	if err := c.authorize(authz.ActionUpdate); err != nil {
		return err
	}
	target := entity

	c.mu.Lock()
	c.setForm(Form[T]{Mode: ModeEdit, Target: &target, Fields: c.kind.FromEntity(entity)})
	c.mu.Unlock()
	return nil
}

// SetField cambia un campo del formulario abierto.
func (c *Controller[T, P]) SetField(name, value string) error {
	if !c.kind.hasField(name) {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.form.Mode == ModeClosed {
		return ErrFormClosed
	}
	if c.form.Fields == nil {
		c.form.Fields = Fields{}
	}
	c.form.Fields[name] = value
	return nil
}

// CloseForm descarta el formulario. Sin efecto si ya está cerrado.
func (c *Controller[T, P]) CloseForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.form.Mode == ModeClosed {
		return
	}
	c.setForm(Form[T]{})
}

// setForm reemplaza el formulario e invalida los envíos en curso del anterior. Requiere mu.
func (c *Controller[T, P]) setForm(f Form[T]) {
	c.form = f
	c.formGen++
}

// Submit valida, vuelve a comprobar el rol y envía create o update según el modo.
// En éxito cierra el formulario y refresca; en fallo el formulario queda abierto.
// Si mientras tanto el formulario se cerró o se reabrió, el resultado no lo toca.
func (c *Controller[T, P]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.form.Mode == ModeClosed {
		c.mu.Unlock()
		return ErrFormClosed
	}
	if c.form.Submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	gen := c.formGen
	mode := c.form.Mode
	fields := c.form.Fields.clone()
	var targetID int64
	if mode == ModeEdit && c.form.Target != nil {
		targetID = c.kind.ID(*c.form.Target)
	}
	c.mu.Unlock()

	if err := c.kind.Validate(fields); err != nil {
		c.notify(validationMessage(err), ports.SeverityError)
		return err
	}

	action := authz.ActionCreate
	if mode == ModeEdit {
		action = authz.ActionUpdate
	}
	if err := c.authorize(action); err != nil {
		return err
	}

	payload, err := c.kind.Payload(fields)
	if err != nil {
		c.notify(validationMessage(err), ports.SeverityError)
		return err
	}

	c.mu.Lock()
	if gen != c.formGen {
		c.mu.Unlock()
		return ErrFormClosed
	}
	if c.form.Submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	c.form.Submitting = true
	c.mu.Unlock()

	success := c.kind.Messages.Created
	if mode == ModeEdit {
		_, err = c.transport.Update(ctx, targetID, payload)
		success = c.kind.Messages.Updated
	} else {
		_, err = c.transport.Create(ctx, payload)
	}

	if err != nil {
		c.mu.Lock()
		if gen == c.formGen {
			c.form.Submitting = false
		}
		c.mu.Unlock()
		c.log.Error().Err(err).Str("mode", mode.String()).Int64("id", targetID).Msg("guardar")
		c.notify(failureMessage(err, c.kind.Messages.OperationFailed), ports.SeverityError)
		return err
	}

	c.mu.Lock()
	if gen == c.formGen {
		c.setForm(Form[T]{})
	}
	c.mu.Unlock()
	c.notify(success, ports.SeveritySuccess)

	// El refresh notifica su propio fallo; el guardado ya fue exitoso.
	_ = c.Refresh(ctx)
	return nil
}

// Remove pide confirmación y borra el recurso id. Con rol insuficiente no pregunta;
// sin Confirmer no borra.
func (c *Controller[T, P]) Remove(ctx context.Context, id int64) error {
	if err := c.authorize(authz.ActionDelete); err != nil {
		return err
	}
	if c.confirmer == nil || !c.confirmer.Confirm(c.kind.Messages.ConfirmDelete) {
		return ErrDeclined
	}

	if err := c.transport.Delete(ctx, id); err != nil {
		c.log.Error().Err(err).Int64("id", id).Msg("borrar")
		c.notify(failureMessage(err, c.kind.Messages.DeleteFailed), ports.SeverityError)
		return err
	}
	c.notify(c.kind.Messages.Deleted, ports.SeveritySuccess)
	_ = c.Refresh(ctx)
	return nil
}

// authorize consulta el gate con la sesión actual y notifica la denegación.
func (c *Controller[T, P]) authorize(action authz.Action) error {
	d := authz.CanPerform(c.sessions.Session(), action, c.kind.Name)
	if d.Allowed {
		return nil
	}
	c.notify(d.Reason(), ports.SeverityError)
	return d.Err
}

func (c *Controller[T, P]) notify(msg string, sev ports.Severity) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(msg, sev)
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}

// failureMessage usa el mensaje del servidor si lo hay, si no el fallback del tipo.
func failureMessage(err error, fallback string) string {
	if msg := strings.TrimSpace(domain.ServerMessage(err)); msg != "" {
		return msg
	}
	return fallback
}
