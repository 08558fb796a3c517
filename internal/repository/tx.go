package repository

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type txContextKey struct{}

const defaultTxRetries = 3

// TxRunner executes units of work in a single transaction. The transaction
// travels in the context, and every repository built on the same connection
// picks it up through querierFrom.
type TxRunner struct {
	conn       PgConnection
	maxRetries uint64
}

func NewTxRunner(conn PgConnection) *TxRunner {
	return &TxRunner{
		conn:       conn,
		maxRetries: defaultTxRetries,
	}
}

// WithTx runs fn inside a transaction and commits if it returns nil.
// Serialization failures and deadlocks restart fn from scratch, so fn must
// not keep state between attempts. Nested calls join the outer transaction.
func (r *TxRunner) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	op := func() error {
		tx, err := r.conn.Begin(ctx)
		if err != nil {
			return backoff.Permanent(errors.New("beginning transaction error: " + err.Error()))
		}
		err = fn(context.WithValue(ctx, txContextKey{}, tx))
		if err != nil {
			_ = tx.Rollback(ctx)
			if isRetryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		err = tx.Commit(ctx)
		if err != nil {
			if isRetryable(err) {
				return err
			}
			return backoff.Permanent(errors.New("committing transaction error: " + err.Error()))
		}
		return nil
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), r.maxRetries), ctx)
	return backoff.Retry(op, policy)
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// Serialization failure, deadlock detected
		case "40001", "40P01":
			return true
		}
	}
	return false
}

func querierFrom(ctx context.Context, conn PgConnection) Querier {
	if tx, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return tx
	}
	return conn
}

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)
