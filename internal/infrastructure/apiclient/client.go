// Package apiclient implementa los puertos de transporte contra el backend REST.
// Usa net/http de la stdlib; los errores se devuelven como *domain.TransportError.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/application/session"
	"github.com/jhoicas/catalogo-admin/internal/domain"
)

const defaultBaseURL = "http://localhost:8080"

// Options configuración del cliente.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// Store de donde se lee la credencial en cada petición. Puede ser nil (anónimo).
	Store  ports.KeyValueStore
	Logger zerolog.Logger
	// HTTPClient opcional (tests).
	HTTPClient *http.Client
}

// Client cliente HTTP JSON del backend.
type Client struct {
	baseURL string
	store   ports.KeyValueStore
	http    *http.Client
	log     zerolog.Logger
}

// New crea el cliente. BaseURL vacío usa http://localhost:8080.
func New(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: base,
		store:   opts.Store,
		http:    hc,
		log:     opts.Logger,
	}
}

// BaseURL URL del backend sin barra final.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) credential(ctx context.Context) string {
	if c.store == nil {
		return ""
	}
	tok, ok, err := c.store.Get(ctx, session.KeyCredential)
	if err != nil {
		c.log.Warn().Err(err).Msg("leer credencial")
		return ""
	}
	if !ok {
		return ""
	}
	return tok
}

// doJSON envía body como JSON y decodifica la respuesta en out (si no es nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.credential(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("petición fallida")
		return &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	resBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("request_id", requestID).
		Msg("http")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp.StatusCode, resBody)
	}

	if out == nil || len(bytes.TrimSpace(resBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resBody, out); err != nil {
		return &domain.TransportError{Status: resp.StatusCode, Err: fmt.Errorf("parse response: %w", err)}
	}
	return nil
}

// responseError extrae el mensaje del servidor: campo "error" y si no "message".
// Un cuerpo que no es JSON no aporta mensaje.
func responseError(status int, body []byte) error {
	te := &domain.TransportError{Status: status}
	if gjson.ValidBytes(body) {
		for _, field := range []string{"error", "message"} {
			if v := gjson.GetBytes(body, field); v.Type == gjson.String && strings.TrimSpace(v.String()) != "" {
				te.Message = v.String()
				return te
			}
		}
	}
	if raw := strings.TrimSpace(string(body)); raw != "" {
		te.Err = errors.New(raw)
	}
	return te
}
