package repository

import (
	"context"
	"fmt"

	"github.com/applytrack/applytrack/pkg/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryRepository reads the status transition log. Writes happen on the
// application update path, never directly.
type HistoryRepository struct {
	db *pgxpool.Pool
}

func (r HistoryRepository) ListByApplication(ctx context.Context, applicationID int64) ([]model.StatusHistory, error) {
	const q = `
SELECT id, application_id, old_status, new_status, changed_at, notes
FROM status_history
WHERE application_id = $1
ORDER BY changed_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, applicationID)
	if err != nil {
		return nil, wrapErr("query status history", err)
	}
	defer rows.Close()

	out := make([]model.StatusHistory, 0, 8)
	for rows.Next() {
		var h model.StatusHistory
		if err := rows.Scan(&h.ID, &h.ApplicationID, &h.OldStatus, &h.NewStatus, &h.ChangedAt, &h.Notes); err != nil {
			return nil, fmt.Errorf("scan status history row: %w", err)
		}
		out = append(out, h)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
