package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin/internal/application/auth"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/pkg/jwt"
)

type memUsers struct {
	mu     sync.Mutex
	byName map[string]*entity.User
	nextID int64
}

func newMemUsers() *memUsers { return &memUsers{byName: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[u.Username]; ok {
		return domain.ErrUserAlreadyExists
	}
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.byName[u.Username] = &cp
	return nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byName[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

var cfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 10, Issuer: "catalogo-admin"}

func TestSignupYLogin(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	uc := auth.NewAuthUseCase(users, cfg)

	out, err := uc.Signup(ctx, dto.SignupRequest{Username: "alice", Password: "good", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, &dto.SignupResponse{ID: 1, Username: "alice"}, out)

	stored, _ := users.FindByUsername(ctx, "alice")
	assert.NotEqual(t, "good", stored.PasswordHash)
	assert.Equal(t, entity.RoleAdmin, stored.Role)

	login, err := uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "good"})
	require.NoError(t, err)
	assert.Equal(t, "alice", login.Username)
	assert.Equal(t, int64(1), login.ID)

	claims, err := jwt.Parse(cfg.Secret, login.JWT)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, entity.RoleAdmin, jwt.DecodeRole(login.JWT))
}

func TestSignup_Duplicado(t *testing.T) {
	ctx := context.Background()
	uc := auth.NewAuthUseCase(newMemUsers(), cfg)
	_, err := uc.Signup(ctx, dto.SignupRequest{Username: "bob", Password: "pw12"})
	require.NoError(t, err)

	_, err = uc.Signup(ctx, dto.SignupRequest{Username: "bob", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	assert.Equal(t, "User already exists!", err.Error())
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	ctx := context.Background()
	uc := auth.NewAuthUseCase(newMemUsers(), cfg)
	_, err := uc.Signup(ctx, dto.SignupRequest{Username: "alice", Password: "good"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "bad"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNormalizeRole(t *testing.T) {
	for in, want := range map[string]string{
		"":          entity.RoleUser,
		"user":      entity.RoleUser,
		"ADMIN":     entity.RoleAdmin,
		" Admin ":   entity.RoleAdmin,
		"superuser": entity.RoleUser,
	} {
		assert.Equal(t, want, auth.NormalizeRole(in), in)
	}
}
