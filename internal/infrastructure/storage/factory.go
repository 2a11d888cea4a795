package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/pkg/config"
)

// Open construye el KeyValueStore configurado. La función devuelta libera los recursos del backend elegido.
func Open(ctx context.Context, cfg config.StorageConfig) (ports.KeyValueStore, func() error, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemoryStore(), func() error { return nil }, nil
	case "redis":
		s, err := ConnectRedis(ctx, RedisConfig{Addr: cfg.RedisAddr, DB: cfg.RedisDB, Prefix: "catalogo:session:"})
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "sqlite", "":
		s, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("storage driver no soportado: %q", cfg.Driver)
	}
}
