package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-admin/internal/application/routing"
)

type fakeAuth struct {
	loading bool
	authed  bool
}

func (f *fakeAuth) Loading() bool         { return f.loading }
func (f *fakeAuth) IsAuthenticated() bool { return f.authed }

func TestGate_PendingMientrasCarga(t *testing.T) {
	auth := &fakeAuth{loading: true}
	g := routing.NewGate(auth, routing.DefaultRoutes())

	d := g.Resolve(routing.PathProducts)
	assert.Equal(t, routing.Pending, d.Outcome)
	assert.Empty(t, d.Target, "no se redirige mientras carga")
}

func TestGate_SinSesionRedirigeALogin(t *testing.T) {
	g := routing.NewGate(&fakeAuth{}, routing.DefaultRoutes())

	for _, p := range []string{routing.PathCategories, routing.PathProducts, "products/", "/products?page=2"} {
		d := g.Resolve(p)
		assert.Equal(t, routing.Redirect, d.Outcome, p)
		assert.Equal(t, routing.PathLogin, d.Target, p)
	}
}

func TestGate_ConSesionRenderiza(t *testing.T) {
	g := routing.NewGate(&fakeAuth{authed: true}, routing.DefaultRoutes())

	d := g.Resolve(routing.PathProducts)
	assert.Equal(t, routing.Render, d.Outcome)
	assert.Equal(t, routing.PathProducts, d.Target)
}

func TestGate_RutasPublicas(t *testing.T) {
	g := routing.NewGate(&fakeAuth{loading: true}, routing.DefaultRoutes())
	assert.Equal(t, routing.Decision{Outcome: routing.Render, Target: routing.PathLogin}, g.Resolve("/login"))
	assert.Equal(t, routing.Decision{Outcome: routing.Render, Target: routing.PathSignup}, g.Resolve("signup"))
}

func TestGate_RutaDesconocidaVaAlDefecto(t *testing.T) {
	g := routing.NewGate(&fakeAuth{authed: true}, routing.DefaultRoutes())
	assert.Equal(t, routing.Decision{Outcome: routing.Redirect, Target: routing.PathCategories}, g.Resolve("/nope"))
	assert.Equal(t, routing.Decision{Outcome: routing.Redirect, Target: routing.PathCategories}, g.Resolve(""))
	assert.Equal(t, routing.PathCategories, g.AfterLogin())
}

func TestGate_ReaccionaAlCambioDeSesion(t *testing.T) {
	auth := &fakeAuth{}
	g := routing.NewGate(auth, routing.DefaultRoutes())
	assert.Equal(t, routing.Redirect, g.Resolve(routing.PathCategories).Outcome)

	auth.authed = true
	assert.Equal(t, routing.Render, g.Resolve(routing.PathCategories).Outcome)
}
