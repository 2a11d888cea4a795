package routing

import "strings"

// AuthState lo que el gate necesita saber del SessionManager.
type AuthState interface {
	Loading() bool
	IsAuthenticated() bool
}

// Outcome resultado de resolver una ruta.
type Outcome int

const (
	// Pending el manager sigue rehidratando: no se muestra nada ni se redirige.
	Pending Outcome = iota
	// Redirect hay que navegar a Decision.Target.
	Redirect
	// Render se puede mostrar Decision.Target.
	Render
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Redirect:
		return "redirect"
	case Render:
		return "render"
	default:
		return "unknown"
	}
}

// Decision destino resuelto para una ruta.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Gate protege la región autenticada de la tabla de rutas.
type Gate struct {
	auth   AuthState
	routes map[string]Route
}

// NewGate construye el gate sobre la tabla dada.
func NewGate(auth AuthState, routes []Route) *Gate {
	idx := make(map[string]Route, len(routes))
	for _, r := range routes {
		idx[r.Path] = r
	}
	return &Gate{auth: auth, routes: idx}
}

// Resolve decide qué hacer con path. Las rutas desconocidas redirigen a PathDefault;
// sin sesión, las protegidas redirigen a PathLogin sin recordar la ruta de origen.
func (g *Gate) Resolve(path string) Decision {
	path = normalize(path)
	route, ok := g.routes[path]
	if !ok {
		return Decision{Outcome: Redirect, Target: PathDefault}
	}
	if !route.Protected {
		return Decision{Outcome: Render, Target: path}
	}
	if g.auth.Loading() {
		return Decision{Outcome: Pending}
	}
	if !g.auth.IsAuthenticated() {
		return Decision{Outcome: Redirect, Target: PathLogin}
	}
	return Decision{Outcome: Render, Target: path}
}

// AfterLogin destino fijo tras un login correcto.
func (g *Gate) AfterLogin() string {
	return PathDefault
}

func normalize(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
