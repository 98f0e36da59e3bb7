package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/applytrack/applytrack/pkg/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InterviewRepository struct {
	db *pgxpool.Pool
}

const interviewColumns = `
	id, application_id, interview_type, interview_date, interview_time,
	interviewer_name, interviewer_title, location, meeting_link,
	preparation_status, outcome, notes, created_at`

var interviewUpdateCols = map[string]bool{
	"interview_type": true, "interview_date": true, "interview_time": true,
	"interviewer_name": true, "interviewer_title": true, "location": true,
	"meeting_link": true, "preparation_status": true, "outcome": true,
	"notes": true,
}

func scanInterview(row pgx.Row) (*model.Interview, error) {
	var iv model.Interview
	err := row.Scan(
		&iv.ID, &iv.ApplicationID, &iv.InterviewType, &iv.InterviewDate,
		&iv.InterviewTime, &iv.InterviewerName, &iv.InterviewerTitle,
		&iv.Location, &iv.MeetingLink, &iv.PreparationStatus, &iv.Outcome,
		&iv.Notes, &iv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r InterviewRepository) Create(ctx context.Context, iv *model.Interview) (*model.Interview, error) {
	const q = `
INSERT INTO interviews (
	application_id, interview_type, interview_date, interview_time,
	interviewer_name, interviewer_title, location, meeting_link,
	preparation_status, outcome, notes
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING` + interviewColumns

	row := r.db.QueryRow(ctx, q,
		iv.ApplicationID, iv.InterviewType, iv.InterviewDate, iv.InterviewTime,
		iv.InterviewerName, iv.InterviewerTitle, iv.Location, iv.MeetingLink,
		iv.PreparationStatus, iv.Outcome, iv.Notes,
	)

	created, err := scanInterview(row)
	if err != nil {
		return nil, wrapErr("insert interview", err)
	}
	return created, nil
}

func (r InterviewRepository) ListByApplication(ctx context.Context, applicationID int64) ([]model.Interview, error) {
	const q = `SELECT` + interviewColumns + `
FROM interviews
WHERE application_id = $1
ORDER BY interview_date, id`

	rows, err := r.db.Query(ctx, q, applicationID)
	if err != nil {
		return nil, wrapErr("query interviews", err)
	}
	defer rows.Close()

	out := make([]model.Interview, 0, 8)
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interview row: %w", err)
		}
		out = append(out, *iv)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r InterviewRepository) Update(ctx context.Context, id int64, updates map[string]any) (*model.Interview, error) {
	setClause, args := buildUpdate(updates, interviewUpdateCols, 0)
	if len(args) == 0 {
		iv, err := scanInterview(r.db.QueryRow(ctx,
			`SELECT`+interviewColumns+` FROM interviews WHERE id = $1`, id))
		if err != nil {
			return nil, wrapErr("get interview", err)
		}
		return iv, nil
	}

	args = append(args, id)
	q := fmt.Sprintf(
		"UPDATE interviews SET %s WHERE id = $%d RETURNING%s",
		strings.TrimPrefix(setClause, ", "), len(args), interviewColumns,
	)

	iv, err := scanInterview(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, wrapErr("update interview", err)
	}
	return iv, nil
}

func (r InterviewRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return wrapErr("delete interview", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete interview: %w", ErrNotFound)
	}
	return nil
}
