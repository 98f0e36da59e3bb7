package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/applytrack/applytrack/pkg/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReminderRepository struct {
	db *pgxpool.Pool
}

const reminderColumns = `
	id, application_id, reminder_type, reminder_date, reminder_time, message,
	completed, created_at`

var reminderUpdateCols = map[string]bool{
	"reminder_type": true, "reminder_date": true, "reminder_time": true,
	"message": true, "completed": true,
}

func scanReminder(row pgx.Row) (*model.Reminder, error) {
	var rem model.Reminder
	err := row.Scan(
		&rem.ID, &rem.ApplicationID, &rem.ReminderType, &rem.ReminderDate,
		&rem.ReminderTime, &rem.Message, &rem.Completed, &rem.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r ReminderRepository) Create(ctx context.Context, rem *model.Reminder) (*model.Reminder, error) {
	const q = `
INSERT INTO reminders (
	application_id, reminder_type, reminder_date, reminder_time, message, completed
) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING` + reminderColumns

	row := r.db.QueryRow(ctx, q,
		rem.ApplicationID, rem.ReminderType, rem.ReminderDate,
		rem.ReminderTime, rem.Message, rem.Completed,
	)

	created, err := scanReminder(row)
	if err != nil {
		return nil, wrapErr("insert reminder", err)
	}
	return created, nil
}

func (r ReminderRepository) ListByApplication(ctx context.Context, applicationID int64) ([]model.Reminder, error) {
	const q = `SELECT` + reminderColumns + `
FROM reminders
WHERE application_id = $1
ORDER BY reminder_date, id`

	rows, err := r.db.Query(ctx, q, applicationID)
	if err != nil {
		return nil, wrapErr("query reminders", err)
	}
	defer rows.Close()

	out := make([]model.Reminder, 0, 8)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reminder row: %w", err)
		}
		out = append(out, *rem)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r ReminderRepository) Update(ctx context.Context, id int64, updates map[string]any) (*model.Reminder, error) {
	setClause, args := buildUpdate(updates, reminderUpdateCols, 0)
	if len(args) == 0 {
		rem, err := scanReminder(r.db.QueryRow(ctx,
			`SELECT`+reminderColumns+` FROM reminders WHERE id = $1`, id))
		if err != nil {
			return nil, wrapErr("get reminder", err)
		}
		return rem, nil
	}

	args = append(args, id)
	q := fmt.Sprintf(
		"UPDATE reminders SET %s WHERE id = $%d RETURNING%s",
		strings.TrimPrefix(setClause, ", "), len(args), reminderColumns,
	)

	rem, err := scanReminder(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, wrapErr("update reminder", err)
	}
	return rem, nil
}

func (r ReminderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return wrapErr("delete reminder", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete reminder: %w", ErrNotFound)
	}
	return nil
}
