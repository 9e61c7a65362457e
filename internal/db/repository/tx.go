package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/gokatarajesh/exam-assembler/internal/db/sqlc"
)

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PgxTxRunner runs sqlc queries inside a pgx transaction.
type PgxTxRunner struct {
	db      txBeginner
	queries *sqlcgen.Queries
}

// NewPgxTxRunner wraps a pool (or connection) able to begin transactions.
func NewPgxTxRunner(db txBeginner, queries *sqlcgen.Queries) *PgxTxRunner {
	return &PgxTxRunner{db: db, queries: queries}
}

// InTx commits when fn returns nil and rolls back otherwise.
func (r *PgxTxRunner) InTx(ctx context.Context, fn func(ExamWriter) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(r.queries.WithTx(tx)); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
