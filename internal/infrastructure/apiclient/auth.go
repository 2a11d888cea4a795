package apiclient

import (
	"context"
	"net/http"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
)

var _ ports.AuthTransport = (*AuthClient)(nil)

// AuthClient transporte de /auth.
type AuthClient struct {
	c *Client
}

// NewAuthClient construye el transporte de auth sobre c.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// Login POST /auth/login.
func (a *AuthClient) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := a.c.doJSON(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup POST /auth/signup.
func (a *AuthClient) Signup(ctx context.Context, in dto.SignupRequest) (*dto.SignupResponse, error) {
	var out dto.SignupResponse
	if err := a.c.doJSON(ctx, http.MethodPost, "/auth/signup", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
