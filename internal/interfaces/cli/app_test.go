package cli_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin/internal/application/auth"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/application/session"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/apiclient"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/storage"
	"github.com/jhoicas/catalogo-admin/internal/interfaces/cli"
	apphttp "github.com/jhoicas/catalogo-admin/internal/interfaces/http"
)

const testSecret = "cli-test-secret"

// ─── harness: backend real en memoria detrás de httptest ────────────────

type env struct {
	kv     *storage.MemoryStore
	out    *bytes.Buffer
	client *apiclient.Client
	yes    bool
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	catalog := memory.NewCatalog()
	authUC := auth.NewAuthUseCase(memory.NewUsers(), auth.JWTConfig{Secret: testSecret, ExpMinutes: 10, Issuer: "test"})
	app := apphttp.NewApp(apphttp.AppConfig{Name: "cli-test", Logger: zerolog.Nop(), Metrics: apphttp.NewMetrics()}, apphttp.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: usecase.NewCategoryUseCase(catalog.Categories(), catalog.Products()),
		ProductUC:  usecase.NewProductUseCase(catalog.Products(), catalog.Categories()),
		JWTSecret:  testSecret,
		Logger:     zerolog.Nop(),
	})
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)

	_, err := authUC.Signup(ctx, dto.SignupRequest{Username: "alice", Password: "good", Role: "ADMIN"})
	require.NoError(t, err)
	_, err = authUC.Signup(ctx, dto.SignupRequest{Username: "bob", Password: "pw12", Role: "USER"})
	require.NoError(t, err)

	kv := storage.NewMemoryStore()
	return &env{
		kv:     kv,
		out:    &bytes.Buffer{},
		client: apiclient.New(apiclient.Options{BaseURL: srv.URL, Store: kv, Logger: zerolog.Nop()}),
		yes:    true,
	}
}

// run simula una invocación del binario: app nueva sobre el mismo almacenamiento.
func (e *env) run(t *testing.T, args ...string) error {
	t.Helper()
	e.out.Reset()
	mgr := session.NewManager(session.NewStore(e.kv, zerolog.Nop()), apiclient.NewAuthClient(e.client), zerolog.Nop())
	app := cli.NewApp(cli.Deps{
		Manager:    mgr,
		Categories: apiclient.NewCategories(e.client),
		Products:   apiclient.NewProducts(e.client),
		Notifier:   cli.NewTerminalNotifier(e.out, false),
		Confirmer:  cli.NewPromptConfirmer(strings.NewReader(""), e.out, e.yes),
		Out:        e.out,
		Logger:     zerolog.Nop(),
	})
	return app.Run(context.Background(), args)
}

// ─── sesión ──────────────────────────────────────────────────────────────

func TestLogin_PersisteYMuestraCategorias(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.run(t, "login", "-u", "alice", "-p", "good"))
	assert.Contains(t, e.out.String(), "✓ Login successful!")
	assert.Contains(t, e.out.String(), "No categories yet. Create your first one!")

	require.NoError(t, e.run(t, "whoami"))
	assert.Contains(t, e.out.String(), "alice (ADMIN)")
}

func TestLogin_CredencialesMalas(t *testing.T) {
	e := newEnv(t)

	err := e.run(t, "login", "--username", "alice", "--password", "nope")
	require.Error(t, err)
	assert.True(t, cli.Reported(err))
	assert.Contains(t, e.out.String(), "✗ ")

	_, ok, _ := e.kv.Get(context.Background(), session.KeyCredential)
	assert.False(t, ok)
}

func TestLogin_CamposVacios(t *testing.T) {
	e := newEnv(t)
	err := e.run(t, "login", "--username", "alice")
	require.Error(t, err)
	assert.Contains(t, e.out.String(), "Please fill in all fields")
}

func TestSignup_Validaciones(t *testing.T) {
	e := newEnv(t)

	cases := []struct {
		args []string
		msg  string
	}{
		{[]string{"signup", "-u", "carol", "-p", "abcd", "--confirm", "abce"}, "Passwords do not match"},
		{[]string{"signup", "-u", "carol", "-p", "abc"}, "Password must be at least 4 characters"},
		{[]string{"signup", "-u", "", "-p", "abcd"}, "Please fill in all fields"},
		{[]string{"signup", "-u", "alice", "-p", "abcd"}, "User already exists!"},
	}
	for _, tc := range cases {
		err := e.run(t, tc.args...)
		require.Error(t, err, tc.msg)
		assert.Contains(t, e.out.String(), tc.msg)
	}

	require.NoError(t, e.run(t, "signup", "-u", "carol", "-p", "abcd", "--role", "admin"))
	assert.Contains(t, e.out.String(), "Account created successfully! Please log in.")
	require.NoError(t, e.run(t, "login", "-u", "carol", "-p", "abcd"))
	require.NoError(t, e.run(t, "whoami"))
	assert.Contains(t, e.out.String(), "carol (ADMIN)")
}

func TestLogout_ProtegidasRedirigenALogin(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.run(t, "login", "-u", "alice", "-p", "good"))
	require.NoError(t, e.run(t, "logout"))

	err := e.run(t, "categories")
	require.ErrorIs(t, err, cli.ErrLoginRequired)
	assert.True(t, cli.Reported(err))
	assert.Contains(t, e.out.String(), "Please log in to continue")

	require.NoError(t, e.run(t, "whoami"))
	assert.Contains(t, e.out.String(), "Not logged in.")
}

func TestSesionCorrupta_SeTrataComoAnonima(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.kv.Set(ctx, session.KeyIdentity, "{roto"))
	require.NoError(t, e.kv.Set(ctx, session.KeyCredential, "x.y.z"))

	err := e.run(t, "products")
	require.ErrorIs(t, err, cli.ErrLoginRequired)
	assert.Equal(t, 0, e.kv.Len())
}

// ─── pantallas ───────────────────────────────────────────────────────────

func TestAdmin_FlujoCompleto(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.run(t, "login", "-u", "alice", "-p", "good"))

	require.NoError(t, e.run(t, "categories", "create", "--name", "Tools"))
	assert.Contains(t, e.out.String(), "✓ Category created successfully!")
	assert.Contains(t, e.out.String(), "Tools")

	require.NoError(t, e.run(t, "products", "create", "--name", "Hammer", "--price", "12.5", "--description", "steel"))
	out := e.out.String()
	assert.Contains(t, out, "✓ Product created successfully!")
	assert.Contains(t, out, "12.50")
	// Sin --category se usa la primera categoría cargada.
	assert.Contains(t, out, "Tools")

	require.NoError(t, e.run(t, "products", "edit", "1", "--price", "15"))
	assert.Contains(t, e.out.String(), "✓ Product updated successfully!")
	assert.Contains(t, e.out.String(), "15.00")

	require.NoError(t, e.run(t, "categories", "edit", "1", "--name", "Hand tools"))
	assert.Contains(t, e.out.String(), "Hand tools")

	require.NoError(t, e.run(t, "products", "delete", "1"))
	assert.Contains(t, e.out.String(), "✓ Product deleted successfully!")
	assert.Contains(t, e.out.String(), "No products yet.")

	require.NoError(t, e.run(t, "categories", "delete", "1"))
	assert.Contains(t, e.out.String(), "No categories yet.")
}

func TestProductos_ValidacionNoLlegaAlServidor(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.run(t, "login", "-u", "alice", "-p", "good"))
	require.NoError(t, e.run(t, "categories", "create", "--name", "Tools"))

	err := e.run(t, "products", "create", "--name", "Hammer", "--price=-1")
	require.Error(t, err)
	assert.Contains(t, e.out.String(), "✗ Please enter a valid price")

	require.NoError(t, e.run(t, "products"))
	assert.Contains(t, e.out.String(), "No products yet.")
}

func TestProductos_CategoriaInexistenteMuestraMensajeDelServidor(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.run(t, "login", "-u", "alice", "-p", "good"))

	err := e.run(t, "products", "create", "--name", "Ghost", "--price", "1", "--category", "99")
	require.Error(t, err)
	assert.Contains(t, e.out.String(), "✗ Category not found")
}

func TestUser_MutacionesDenegadasEnCliente(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.run(t, "login", "-u", "alice", "-p", "good"))
	require.NoError(t, e.run(t, "categories", "create", "--name", "Tools"))
	require.NoError(t, e.run(t, "logout"))
	require.NoError(t, e.run(t, "login", "-u", "bob", "-p", "pw12"))

	require.NoError(t, e.run(t, "categories"))
	assert.Contains(t, e.out.String(), "Tools")

	err := e.run(t, "categories", "create", "--name", "Toys")
	require.Error(t, err)
	assert.Contains(t, e.out.String(), "You do not have the authority to create a category. Admin role required.")

	err = e.run(t, "categories", "delete", "1")
	require.Error(t, err)
	assert.Contains(t, e.out.String(), "You do not have the authority to delete a category. Admin role required.")

	err = e.run(t, "products", "edit", "1", "--name", "x")
	require.Error(t, err)
	assert.False(t, cli.Reported(err))
	assert.Contains(t, err.Error(), "product 1 no encontrado")
}

func TestDelete_CanceladoNoBorra(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.run(t, "login", "-u", "alice", "-p", "good"))
	require.NoError(t, e.run(t, "categories", "create", "--name", "Tools"))

	e.yes = false
	require.NoError(t, e.run(t, "categories", "delete", "1"))
	assert.Contains(t, e.out.String(), "Are you sure you want to delete this category? [y/N]:")
	assert.Contains(t, e.out.String(), "Cancelled.")

	require.NoError(t, e.run(t, "categories"))
	assert.Contains(t, e.out.String(), "Tools")
}

func TestRun_ComandoDesconocido(t *testing.T) {
	e := newEnv(t)
	err := e.run(t, "orders")
	require.ErrorIs(t, err, cli.ErrUsage)
	assert.False(t, cli.Reported(err))
	assert.Contains(t, e.out.String(), "Usage: catalogo")

	require.NoError(t, e.run(t, "login", "-u", "alice", "-p", "good"))
	err = e.run(t, "categories", "edit", "abc", "--name", "x")
	require.ErrorIs(t, err, cli.ErrUsage)
}

// ─── feedback ────────────────────────────────────────────────────────────

func TestTerminalNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := cli.NewTerminalNotifier(&buf, false)
	n.Notify("ok", ports.SeveritySuccess)
	n.Notify("mal", ports.SeverityError)
	assert.Equal(t, "✓ ok\n✗ mal\n", buf.String())

	buf.Reset()
	cli.NewTerminalNotifier(&buf, true).Notify("ok", ports.SeveritySuccess)
	assert.Equal(t, "\x1b[32m✓\x1b[0m ok\n", buf.String())
}

func TestPromptConfirmer(t *testing.T) {
	var out bytes.Buffer
	for _, tc := range []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	} {
		c := cli.NewPromptConfirmer(strings.NewReader(tc.input), &out, false)
		assert.Equal(t, tc.want, c.Confirm("seguro?"), "input %q", tc.input)
	}
	assert.True(t, cli.NewPromptConfirmer(strings.NewReader(""), &out, true).Confirm("seguro?"))
}
