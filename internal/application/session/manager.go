package session

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/pkg/jwt"
)

var _ ports.SessionSource = (*Manager)(nil)

// Manager orquesta login/signup/logout y es el único dueño de la sesión viva.
// Se crea una vez al arrancar y se inyecta en quien lo necesite.
type Manager struct {
	store *Store
	auth  ports.AuthTransport
	log   zerolog.Logger

	mu      sync.RWMutex
	current *entity.Session
	loading bool
}

// NewManager construye el manager en estado loading; llamar Bootstrap para rehidratar.
func NewManager(store *Store, auth ports.AuthTransport, log zerolog.Logger) *Manager {
	return &Manager{store: store, auth: auth, log: log, loading: true}
}

// Bootstrap rehidrata la sesión desde el almacenamiento y apaga loading para siempre.
func (m *Manager) Bootstrap(ctx context.Context) {
	sess := m.store.Rehydrate(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loading {
		return
	}
	m.current = sess
	m.loading = false
	if sess != nil {
		m.log.Debug().Str("username", sess.Username).Str("role", sess.Role).Msg("sesión rehidratada")
	}
}

// Loading es true solo mientras no ha terminado Bootstrap.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Session devuelve una copia de la sesión viva o nil.
func (m *Manager) Session() *entity.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	cp := *m.current
	return &cp
}

// IsAuthenticated indica si hay sesión viva.
func (m *Manager) IsAuthenticated() bool {
	return m.Session() != nil
}

// Login autentica contra el transporte, deriva el rol del JWT, persiste y activa la sesión.
// Cualquier fallo se devuelve como *domain.AuthenticationError sin tocar sesión ni almacenamiento.
func (m *Manager) Login(ctx context.Context, username, password string) (*entity.Session, error) {
	out, err := m.auth.Login(ctx, dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, authError(err, "Login failed")
	}

	sess := &entity.Session{
		Identity: entity.Identity{
			ID:       out.ID,
			Username: out.Username,
			Role:     jwt.DecodeRole(out.JWT),
		},
		Credential: out.JWT,
	}
	if err := m.store.Persist(ctx, sess); err != nil {
		// La sesión sigue viva en memoria; solo se pierde la persistencia.
		m.log.Warn().Err(err).Msg("persistir sesión")
	}

	m.mu.Lock()
	m.current = sess
	m.loading = false
	m.mu.Unlock()

	m.log.Info().Str("username", sess.Username).Str("role", sess.Role).Msg("sesión iniciada")
	cp := *sess
	return &cp, nil
}

// Signup registra la cuenta; no inicia sesión (hay que hacer login después).
func (m *Manager) Signup(ctx context.Context, username, password, role string) (*dto.SignupResponse, error) {
	out, err := m.auth.Signup(ctx, dto.SignupRequest{Username: username, Password: password, Role: role})
	if err != nil {
		return nil, authError(err, "Signup failed")
	}
	m.log.Info().Str("username", out.Username).Msg("cuenta creada")
	return out, nil
}

// Logout borra el almacenamiento y la sesión viva. Siempre tiene éxito y no toca la red.
func (m *Manager) Logout(ctx context.Context) {
	m.store.Clear(ctx)

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
}

// authError convierte un fallo de transporte en AuthenticationError con el mensaje del servidor tal cual.
func authError(err error, fallback string) error {
	msg := domain.ServerMessage(err)
	if strings.TrimSpace(msg) == "" {
		msg = err.Error()
	}
	if strings.TrimSpace(msg) == "" {
		msg = fallback
	}
	return &domain.AuthenticationError{Message: msg, Err: err}
}
