package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Migrate aplica el esquema embebido dentro de una transacción. Es idempotente.
func Migrate(ctx context.Context, tx *TxRunner) error {
	return tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, schemaSQL); err != nil {
			return fmt.Errorf("aplicar schema: %w", err)
		}
		return nil
	})
}
