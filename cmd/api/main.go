package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/jhoicas/catalogo-admin/internal/application/auth"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/catalogo-admin/internal/interfaces/http"
	"github.com/jhoicas/catalogo-admin/pkg/config"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

func main() {
	flags := pflag.NewFlagSet("api", pflag.ExitOnError)
	flags.String("env", "", "entorno (development, production)")
	flags.String("log-level", "", "nivel de log")
	flags.String("db-driver", "", "postgres o memory")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()

	var (
		userRepo     repository.UserRepository
		categoryRepo repository.CategoryRepository
		productRepo  repository.ProductRepository
	)
	switch cfg.DB.Driver {
	case "memory":
		log.Warn().Msg("repositorios en memoria: los datos se pierden al reiniciar")
		catalog := memory.NewCatalog()
		userRepo = memory.NewUsers()
		categoryRepo = catalog.Categories()
		productRepo = catalog.Products()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, postgres.NewTxRunner(pool)); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		userRepo = postgres.NewUserRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)

	swaggerFile := cfg.HTTP.SwaggerFile
	if swaggerFile != "" {
		if _, err := os.Stat(swaggerFile); err != nil {
			log.Warn().Err(err).Str("file", swaggerFile).Msg("swagger no disponible, /docs desactivado")
			swaggerFile = ""
		}
	}

	httpLog := log.Component("http")
	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		Logger:      httpLog,
		Metrics:     httpRouter.NewMetrics(),
		SwaggerFile: swaggerFile,
	}, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		JWTSecret:  cfg.JWT.Secret,
		Logger:     httpLog,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
