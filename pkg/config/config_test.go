package config_test

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "catalogo-admin", cfg.App.Name)
	assert.Equal(t, 10, cfg.JWT.Expiration)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "./docs/swagger.json", cfg.HTTP.SwaggerFile)
}

func TestLoad_EnvSobrescribeDefecto(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.local:9000/")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")
	t.Setenv("STORAGE_DRIVER", "MEMORY")

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://api.local:9000", cfg.Client.BaseURL, "se recorta la barra final")
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "memory", cfg.Storage.Driver)
}

func TestLoad_FlagsTienenPrioridad(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("storage", "sqlite", "")
	fs.String("api-url", "", "")
	require.NoError(t, fs.Parse([]string{"--storage", "memory"}))

	cfg, err := config.Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "http://localhost:8080", cfg.Client.BaseURL, "flag sin cambiar no pisa el defecto")
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "etcd")
	_, err := config.Load(nil)
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w", DBName: "catalogo", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw@db:5432/catalogo?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

func TestLoad_DBDriver(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DB.Driver)

	t.Setenv("DB_DRIVER", "Memory")
	cfg, err = config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.DB.Driver)

	t.Setenv("DB_DRIVER", "mysql")
	_, err = config.Load(nil)
	assert.Error(t, err)
}
