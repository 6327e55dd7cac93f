package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// snapshotTxOptions gives every statement of the transaction the same view
// of the database.
var snapshotTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// WithReadSnapshot runs fn in a REPEATABLE READ, READ ONLY transaction and
// returns its result. The transaction is always rolled back on error or
// panic; on success it is committed.
func WithReadSnapshot[T any](ctx context.Context, pool *pgxpool.Pool, fn func(pgx.Tx) (T, error)) (result T, err error) {
	tx, err := pool.BeginTx(ctx, snapshotTxOptions)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
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

	result, err = fn(tx)
	if err != nil {
		var zero T
		return zero, err
	}

	if err = tx.Commit(ctx); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return result, nil
}
