package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

// Claves del almacenamiento durable. Se escriben y borran siempre juntas.
const (
	KeyIdentity   = "user"
	KeyCredential = "jwt"
)

// Store persiste la sesión en un KeyValueStore bajo KeyIdentity y KeyCredential.
type Store struct {
	kv  ports.KeyValueStore
	log zerolog.Logger
}

// NewStore construye el store de sesión.
func NewStore(kv ports.KeyValueStore, log zerolog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Persist escribe identidad y credencial en una sola escritura, sobrescribiendo valores previos.
func (s *Store) Persist(ctx context.Context, sess *entity.Session) error {
	raw, err := json.Marshal(sess.Identity)
	if err != nil {
		return fmt.Errorf("serializar identidad: %w", err)
	}
	if err := s.kv.SetMany(ctx, map[string]string{
		KeyIdentity:   string(raw),
		KeyCredential: sess.Credential,
	}); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Rehydrate reconstruye la sesión. Devuelve nil si falta alguna de las dos claves.
// Una identidad que no es un objeto JSON se trata como corrupción: se borran ambas claves
// y se devuelve nil. Los campos ausentes no son corrupción.
func (s *Store) Rehydrate(ctx context.Context) *entity.Session {
	rawIdentity, okIdentity, err := s.kv.Get(ctx, KeyIdentity)
	if err != nil {
		s.log.Warn().Err(err).Msg("leer identidad persistida")
		return nil
	}
	credential, okCredential, err := s.kv.Get(ctx, KeyCredential)
	if err != nil {
		s.log.Warn().Err(err).Msg("leer credencial persistida")
		return nil
	}
	if !okIdentity || !okCredential || rawIdentity == "" || credential == "" {
		return nil
	}

	var id *entity.Identity
	if err := json.Unmarshal([]byte(rawIdentity), &id); err != nil || id == nil {
		if err == nil {
			err = fmt.Errorf("identidad null")
		}
		s.log.Warn().Err(fmt.Errorf("%w: %v", domain.ErrCorruptedSession, err)).Msg("limpiando almacenamiento")
		s.Clear(ctx)
		return nil
	}
	if id.Role == "" {
		id.Role = entity.RoleUser
	}
	return &entity.Session{Identity: *id, Credential: credential}
}

// Clear elimina ambas claves. Idempotente; los errores solo se registran.
func (s *Store) Clear(ctx context.Context) {
	if err := s.kv.Delete(ctx, KeyIdentity, KeyCredential); err != nil {
		s.log.Warn().Err(err).Msg("limpiar sesión persistida")
	}
}
