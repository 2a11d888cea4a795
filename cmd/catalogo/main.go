package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/jhoicas/catalogo-admin/internal/application/session"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/apiclient"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/storage"
	"github.com/jhoicas/catalogo-admin/internal/interfaces/cli"
	"github.com/jhoicas/catalogo-admin/pkg/config"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

func main() {
	os.Exit(run())
}

// run devuelve el código de salida; los defer se ejecutan antes de salir.
func run() int {
	flags := pflag.NewFlagSet("catalogo", pflag.ContinueOnError)
	flags.String("env", "", "entorno (development, production)")
	flags.String("log-level", "", "nivel de log")
	flags.String("api-url", "", "URL base del backend")
	flags.Int("timeout", 0, "timeout HTTP en segundos")
	flags.String("storage", "", "almacenamiento de sesión: sqlite, redis o memory")
	flags.String("sqlite-path", "", "archivo SQLite de la sesión")
	flags.String("redis-addr", "", "dirección de Redis")
	noColor := flags.Bool("no-color", false, "desactivar colores")
	yes := flags.BoolP("yes", "y", false, "no pedir confirmación al borrar")
	// Los flags de subcomandos se parsean en cli; aquí solo los globales previos al comando.
	flags.SetInterspersed(false)
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cargar configuración: %v\n", err)
		return 1
	}
	if !flags.Changed("log-level") && os.Getenv("LOG_LEVEL") == "" {
		cfg.App.LogLevel = "warn"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeStore, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento de sesión")
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("cerrar almacenamiento")
		}
	}()

	client := apiclient.New(apiclient.Options{
		BaseURL: cfg.Client.BaseURL,
		Timeout: cfg.Client.Timeout,
		Store:   kv,
		Logger:  log.Component("apiclient"),
	})
	manager := session.NewManager(session.NewStore(kv, log.Component("session")), apiclient.NewAuthClient(client), log.Component("session"))
	manager.Bootstrap(ctx)

	app := cli.NewApp(cli.Deps{
		Manager:    manager,
		Categories: apiclient.NewCategories(client),
		Products:   apiclient.NewProducts(client),
		Notifier:   cli.NewTerminalNotifier(os.Stdout, !*noColor),
		Confirmer:  cli.NewPromptConfirmer(os.Stdin, os.Stdout, *yes),
		Out:        os.Stdout,
		Logger:     log.Component("cli"),
	})

	if err := app.Run(ctx, flags.Args()); err != nil {
		if !cli.Reported(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}
