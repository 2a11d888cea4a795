package http

import (
	"strconv"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-admin/internal/application/auth"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	JWTSecret  string
	Logger     zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	requireAuth := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Logger)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/signup", authHandler.Signup)

	api := app.Group("/api")

	// Categories: lectura con token; mutaciones solo ADMIN.
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Logger)
	categories.Get("/", requireAuth, categoryHandler.List)
	categories.Get("/:id", requireAuth, categoryHandler.GetByID)
	categories.Post("/", requireAuth, adminOnly, categoryHandler.Create)
	categories.Put("/:id", requireAuth, adminOnly, categoryHandler.Update)
	categories.Patch("/:id", requireAuth, adminOnly, categoryHandler.Patch)
	categories.Delete("/:id", requireAuth, adminOnly, categoryHandler.Delete)

	// Products: lectura anónima; mutaciones solo ADMIN.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Logger)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", requireAuth, adminOnly, productHandler.Create)
	products.Put("/:id", requireAuth, adminOnly, productHandler.Update)
	products.Patch("/:id", requireAuth, adminOnly, productHandler.Patch)
	products.Delete("/:id", requireAuth, adminOnly, productHandler.Delete)
}

// AppConfig opciones de NewApp.
type AppConfig struct {
	Name    string
	Logger  zerolog.Logger
	Metrics *Metrics
	// SwaggerFile ruta del swagger.json; debe existir. Vacío no monta /docs.
	SwaggerFile string
}

// NewApp crea la app Fiber con recover, logging de peticiones, /docs, /health y /metrics.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(dto.NewError("HTTP_"+strconv.Itoa(code), err.Error()))
		},
	})
	app.Use(recover.New())
	app.Use(RequestLogger(cfg.Logger, cfg.Metrics))

	// Swagger UI en http://localhost:<port>/docs
	if cfg.SwaggerFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.SwaggerFile,
			Path:     "docs",
			Title:    "Catalogo Admin API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics.Handler())
	}

	Router(app, deps)
	return app
}
