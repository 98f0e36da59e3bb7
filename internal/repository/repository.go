package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound is returned when no row matches the requested identifier.
	ErrNotFound = errors.New("record not found")
	// ErrConstraint is returned when a write violates a schema constraint.
	// Request validation should make this unreachable.
	ErrConstraint = errors.New("constraint violation")
)

type Repository struct {
	Application ApplicationRepository
	History     HistoryRepository
	Interview   InterviewRepository
	Reminder    ReminderRepository
	Goal        GoalRepository
}

func New(db *pgxpool.Pool) *Repository {
	return &Repository{
		Application: ApplicationRepository{db: db},
		History:     HistoryRepository{db: db},
		Interview:   InterviewRepository{db: db},
		Reminder:    ReminderRepository{db: db},
		Goal:        GoalRepository{db: db},
	}
}

// execTx runs fn inside a transaction, rolling back on any error.
func execTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("tx error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

// wrapErr classifies driver errors into the package's sentinel errors.
func wrapErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return fmt.Errorf("%s: %s: %w", op, pgErr.Message, ErrConstraint)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// buildUpdate assembles "col = $n" pairs for the columns in updates that
// appear in validCols, returning the fragment and its arguments. argOffset is
// the number of placeholders already consumed by the caller.
func buildUpdate(updates map[string]any, validCols map[string]bool, argOffset int) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(updates))

	for col, val := range updates {
		if !validCols[col] {
			continue
		}
		args = append(args, val)
		fmt.Fprintf(&b, ", %s = $%d", col, argOffset+len(args))
	}

	return b.String(), args
}
