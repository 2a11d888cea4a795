// Package cli cliente de terminal del catálogo. Cada comando es una pantalla de la
// tabla de rutas y pasa por el RouteGate antes de mostrarse.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/application/resource"
	"github.com/jhoicas/catalogo-admin/internal/application/routing"
	"github.com/jhoicas/catalogo-admin/internal/application/session"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

var (
	ErrUsage         = errors.New("uso incorrecto")
	ErrLoginRequired = errors.New("se requiere iniciar sesión")
)

// reportedError marca un error que ya se mostró al usuario por el Notifier.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// Reported indica si err ya fue notificado; el llamador solo debe ajustar el código de salida.
func Reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// Deps colaboradores del cliente de terminal.
type Deps struct {
	Manager    *session.Manager
	Categories ports.ResourceTransport[entity.Category, dto.CategoryRequest]
	Products   ports.ResourceTransport[entity.Product, dto.ProductRequest]
	Notifier   ports.Notifier
	Confirmer  ports.Confirmer
	Out        io.Writer
	Logger     zerolog.Logger
}

// App despacha comandos hacia las pantallas.
type App struct {
	manager    *session.Manager
	gate       *routing.Gate
	categories *resource.Controller[entity.Category, dto.CategoryRequest]
	// lookup categorías del selector de la pantalla de productos; falla en silencio.
	lookup   *resource.Controller[entity.Category, dto.CategoryRequest]
	products *resource.Controller[entity.Product, dto.ProductRequest]
	notifier ports.Notifier
	out      io.Writer
	log      zerolog.Logger
}

func NewApp(d Deps) *App {
	a := &App{
		manager:  d.Manager,
		gate:     routing.NewGate(d.Manager, routing.DefaultRoutes()),
		notifier: d.Notifier,
		out:      d.Out,
		log:      d.Logger,
	}
	a.categories = resource.NewController(resource.CategoryKind(), resource.Deps[entity.Category, dto.CategoryRequest]{
		Transport: d.Categories,
		Sessions:  d.Manager,
		Notifier:  d.Notifier,
		Confirmer: d.Confirmer,
		Logger:    d.Logger,
	})
	a.lookup = resource.NewController(resource.CategoryKind(), resource.Deps[entity.Category, dto.CategoryRequest]{
		Transport: d.Categories,
		Sessions:  d.Manager,
		Logger:    d.Logger,
	})
	a.products = resource.NewController(resource.ProductKind(a.lookup.Items), resource.Deps[entity.Product, dto.ProductRequest]{
		Transport: d.Products,
		Sessions:  d.Manager,
		Notifier:  d.Notifier,
		Confirmer: d.Confirmer,
		Logger:    d.Logger,
	})
	return a
}

// Run ejecuta un comando. Rehidrata la sesión la primera vez.
func (a *App) Run(ctx context.Context, args []string) error {
	if a.manager.Loading() {
		a.manager.Bootstrap(ctx)
	}
	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.runLogin(ctx, rest)
	case "signup":
		return a.runSignup(ctx, rest)
	case "logout":
		a.manager.Logout(ctx)
		fmt.Fprintln(a.out, "Logged out.")
		return nil
	case "whoami":
		return a.runWhoami()
	case "categories":
		return runScreen(ctx, a, a.categoryScreen(), rest)
	case "products":
		return runScreen(ctx, a, a.productScreen(), rest)
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("%w: comando desconocido %q", ErrUsage, cmd)
	}
}

// enter resuelve path con el gate. Sin sesión indica cómo iniciarla.
func (a *App) enter(path string) error {
	d := a.gate.Resolve(path)
	switch d.Outcome {
	case routing.Render:
		return nil
	case routing.Redirect:
		if d.Target == routing.PathLogin {
			fmt.Fprintln(a.out, "Please log in to continue: catalogo login --username <user> --password <password>")
			return reported(ErrLoginRequired)
		}
		return fmt.Errorf("ruta %s redirige a %s", path, d.Target)
	default:
		return fmt.Errorf("ruta %s: sesión aún cargando", path)
	}
}

// navigate muestra la pantalla de path.
func (a *App) navigate(ctx context.Context, path string) error {
	switch path {
	case routing.PathCategories:
		return runScreen(ctx, a, a.categoryScreen(), nil)
	case routing.PathProducts:
		return runScreen(ctx, a, a.productScreen(), nil)
	default:
		return a.enter(path)
	}
}

func (a *App) runLogin(ctx context.Context, args []string) error {
	if err := a.enter(routing.PathLogin); err != nil {
		return err
	}
	fs := a.flagSet("login")
	username := fs.StringP("username", "u", "", "usuario")
	password := fs.StringP("password", "p", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if strings.TrimSpace(*username) == "" || strings.TrimSpace(*password) == "" {
		a.notify("Please fill in all fields", ports.SeverityError)
		return reported(ErrUsage)
	}
	if _, err := a.manager.Login(ctx, *username, *password); err != nil {
		a.notify(err.Error(), ports.SeverityError)
		return reported(err)
	}
	a.notify("Login successful!", ports.SeveritySuccess)
	return a.navigate(ctx, a.gate.AfterLogin())
}

func (a *App) runSignup(ctx context.Context, args []string) error {
	if err := a.enter(routing.PathSignup); err != nil {
		return err
	}
	fs := a.flagSet("signup")
	username := fs.StringP("username", "u", "", "usuario")
	password := fs.StringP("password", "p", "", "contraseña")
	confirm := fs.String("confirm", "", "repetir contraseña (por defecto igual a --password)")
	role := fs.String("role", entity.RoleUser, "USER o ADMIN")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if !fs.Changed("confirm") {
		*confirm = *password
	}

	switch {
	case strings.TrimSpace(*username) == "" || strings.TrimSpace(*password) == "":
		a.notify("Please fill in all fields", ports.SeverityError)
		return reported(ErrUsage)
	case *password != *confirm:
		a.notify("Passwords do not match", ports.SeverityError)
		return reported(ErrUsage)
	case len(*password) < 4:
		a.notify("Password must be at least 4 characters", ports.SeverityError)
		return reported(ErrUsage)
	}

	if _, err := a.manager.Signup(ctx, *username, *password, strings.ToUpper(strings.TrimSpace(*role))); err != nil {
		a.notify(err.Error(), ports.SeverityError)
		return reported(err)
	}
	a.notify("Account created successfully! Please log in.", ports.SeveritySuccess)
	return nil
}

func (a *App) runWhoami() error {
	sess := a.manager.Session()
	if sess == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s) id=%d\n", sess.Username, sess.Role, sess.ID)
	return nil
}

func (a *App) notify(msg string, sev ports.Severity) {
	if a.notifier != nil {
		a.notifier.Notify(msg, sev)
	}
}

func (a *App) usage() {
	fmt.Fprint(a.out, `Usage: catalogo <command> [flags]

Commands:
  login    --username <user> --password <password>
  signup   --username <user> --password <password> [--confirm <password>] [--role USER|ADMIN]
  logout
  whoami
  categories [list]
  categories create --name <name>
  categories edit <id> --name <name>
  categories delete <id>
  products [list]
  products create --name <name> --price <price> --category <id> [--description <text>]
  products edit <id> [--name ...] [--price ...] [--category ...] [--description ...]
  products delete <id>
`)
}
