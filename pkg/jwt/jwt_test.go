package jwt_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/catalogo-admin/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "catalogo-admin-test"
)

func TestGenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 7, "alice", pkgjwt.RoleAdmin, testIssuer, 10)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, pkgjwt.RoleAdmin, claims.Role)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "alice", pkgjwt.RoleUser, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "alice", pkgjwt.RoleUser, testIssuer, 10)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "alice", pkgjwt.RoleUser, testIssuer, 10)
	assert.Error(t, err)
}

// DecodeRole no verifica firma: un token firmado con cualquier secreto revela su rol.
func TestDecodeRole_TokenValido(t *testing.T) {
	tok, err := pkgjwt.Generate("cualquier-secreto", 1, "alice", pkgjwt.RoleAdmin, testIssuer, 10)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.RoleAdmin, pkgjwt.DecodeRole(tok))
}

func TestDecodeRole_ExpiradoIgualDecodifica(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "alice", pkgjwt.RoleAdmin, testIssuer, -5)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.RoleAdmin, pkgjwt.DecodeRole(tok))
}

func TestDecodeRole_MalformadoDegradaAUser(t *testing.T) {
	seg := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	cases := map[string]string{
		"vacío":              "",
		"sin separador":      "abc",
		"base64 inválido":    "h.!!!.s",
		"no es JSON":         "h." + seg("not-json") + ".s",
		"JSON array":         "h." + seg(`["ADMIN"]`) + ".s",
		"sin role":           "h." + seg(`{"sub":"alice"}`) + ".s",
		"role vacío":         "h." + seg(`{"role":""}`) + ".s",
		"role no string":     "h." + seg(`{"role":42}`) + ".s",
		"role null":          "h." + seg(`{"role":null}`) + ".s",
		"solo puntos":        "..",
		"segmento con ruido": "a.b.c.d",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, pkgjwt.RoleUser, pkgjwt.DecodeRole(tok))
			})
		})
	}
}

func TestDecodeRole_SegmentoConPadding(t *testing.T) {
	payload := base64.URLEncoding.EncodeToString([]byte(`{"role":"ADMIN"}`))
	assert.Equal(t, pkgjwt.RoleAdmin, pkgjwt.DecodeRole("h."+payload+".s"))
}

func TestDecodeRole_SoloDosSegmentos(t *testing.T) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"role":"ADMIN"}`))
	assert.Equal(t, pkgjwt.RoleAdmin, pkgjwt.DecodeRole("h."+payload))
}
