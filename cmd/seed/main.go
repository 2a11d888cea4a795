// seed crea el esquema, una cuenta ADMIN inicial y, opcionalmente, un catálogo de ejemplo.
//
// Uso: go run ./cmd/seed --admin alice --password secreto [--demo]
// Lee la conexión de DATABASE_URL o DB_* igual que cmd/api.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/jhoicas/catalogo-admin/internal/application/auth"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-admin/pkg/config"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

// demoCatalog categorías y productos de ejemplo.
var demoCatalog = map[string][]dto.ProductRequest{
	"Tools": {
		{Name: "Hammer", Description: "Steel claw hammer", Price: decimal.RequireFromString("12.50")},
		{Name: "Screwdriver", Description: "Phillips #2", Price: decimal.RequireFromString("4.99")},
	},
	"Garden": {
		{Name: "Hose", Description: "15 m", Price: decimal.RequireFromString("19.90")},
	},
}

func main() {
	flags := pflag.NewFlagSet("seed", pflag.ExitOnError)
	admin := flags.String("admin", "admin", "username de la cuenta ADMIN")
	password := flags.String("password", "", "password de la cuenta ADMIN (obligatorio)")
	demo := flags.Bool("demo", false, "crear categorías y productos de ejemplo")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if *password == "" {
		log.Fatal().Msg("--password es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, postgres.NewTxRunner(pool)); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer,
	})
	_, err = authUC.Signup(ctx, dto.SignupRequest{Username: *admin, Password: *password, Role: "ADMIN"})
	switch {
	case errors.Is(err, domain.ErrUserAlreadyExists):
		log.Info().Str("username", *admin).Msg("la cuenta ya existe, se conserva")
	case err != nil:
		log.Fatal().Err(err).Msg("crear cuenta ADMIN")
	default:
		log.Info().Str("username", *admin).Msg("cuenta ADMIN creada")
	}

	if !*demo {
		return
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)

	for name, products := range demoCatalog {
		cat, err := categoryUC.Create(ctx, dto.CategoryRequest{Name: name})
		if err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("crear categoría")
		}
		for _, p := range products {
			p.CategoryID = cat.ID
			if _, err := productUC.Create(ctx, p); err != nil {
				log.Fatal().Err(err).Str("product", p.Name).Msg("crear producto")
			}
		}
		log.Info().Str("category", name).Int("products", len(products)).Msg("categoría de ejemplo creada")
	}
}
