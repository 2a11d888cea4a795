package routing

// Rutas de la aplicación cliente.
const (
	PathLogin      = "/login"
	PathSignup     = "/signup"
	PathCategories = "/categories"
	PathProducts   = "/products"

	// PathDefault destino fijo después del login y de cualquier ruta desconocida.
	PathDefault = PathCategories
)

// Route entrada de la tabla de rutas.
type Route struct {
	Path      string
	Protected bool
}

// DefaultRoutes tabla de rutas: login/signup públicas, pantallas de recursos protegidas.
func DefaultRoutes() []Route {
	return []Route{
		{Path: PathLogin},
		{Path: PathSignup},
		{Path: PathCategories, Protected: true},
		{Path: PathProducts, Protected: true},
	}
}
