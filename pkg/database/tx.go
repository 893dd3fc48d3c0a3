package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Tx is the subset of pgx.Tx used by repositories
type Tx = pgx.Tx

// WithTx runs fn inside a transaction. Commit kalau fn sukses, rollback kalau error/panic.
func WithTx(ctx context.Context, db PgxIface, fn func(tx Tx) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
