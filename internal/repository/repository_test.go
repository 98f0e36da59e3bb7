package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdate(t *testing.T) {
	validCols := map[string]bool{"status": true, "notes": true}

	t.Run("single column", func(t *testing.T) {
		clause, args := buildUpdate(map[string]any{"status": "Applied"}, validCols, 0)
		assert.Equal(t, ", status = $1", clause)
		assert.Equal(t, []any{"Applied"}, args)
	})

	t.Run("unknown columns skipped", func(t *testing.T) {
		clause, args := buildUpdate(map[string]any{"status": "Applied", "id": int64(9), "evil": "x"}, validCols, 0)
		assert.Equal(t, ", status = $1", clause)
		assert.Equal(t, []any{"Applied"}, args)
	})

	t.Run("empty updates", func(t *testing.T) {
		clause, args := buildUpdate(map[string]any{}, validCols, 0)
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("arg offset", func(t *testing.T) {
		clause, args := buildUpdate(map[string]any{"notes": nil}, validCols, 3)
		assert.Equal(t, ", notes = $4", clause)
		require.Len(t, args, 1)
		assert.Nil(t, args[0])
	})

	t.Run("multiple columns numbered sequentially", func(t *testing.T) {
		clause, args := buildUpdate(map[string]any{"status": "Applied", "notes": "n"}, validCols, 0)
		assert.Len(t, args, 2)
		assert.Contains(t, clause, "$1")
		assert.Contains(t, clause, "$2")
		assert.Equal(t, 2, strings.Count(clause, "="))
	})
}

func TestWrapErr(t *testing.T) {
	t.Run("no rows maps to not found", func(t *testing.T) {
		err := wrapErr("get application", pgx.ErrNoRows)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "get application")
	})

	t.Run("integrity violation maps to constraint", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23502", Message: "null value in column"}
		err := wrapErr("insert application", fmt.Errorf("exec: %w", pgErr))
		assert.ErrorIs(t, err, ErrConstraint)
	})

	t.Run("unique violation maps to constraint", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
		assert.ErrorIs(t, wrapErr("insert", pgErr), ErrConstraint)
	})

	t.Run("other pg errors pass through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42703", Message: "undefined column"}
		err := wrapErr("update", pgErr)
		assert.NotErrorIs(t, err, ErrConstraint)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("plain errors pass through", func(t *testing.T) {
		base := errors.New("boom")
		err := wrapErr("op", base)
		assert.ErrorIs(t, err, base)
	})
}

func TestApplicationUpdateColsCoverSchema(t *testing.T) {
	// Identity and bookkeeping columns must never be client-writable.
	for _, col := range []string{"id", "created_at", "updated_at"} {
		assert.False(t, applicationUpdateCols[col], "%s must not be updatable", col)
	}

	for _, col := range []string{"job_title", "company_name", "status", "priority", "archived", "deadline"} {
		assert.True(t, applicationUpdateCols[col], "%s must be updatable", col)
	}
}
