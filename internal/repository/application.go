package repository

import (
	"context"
	"fmt"

	"github.com/applytrack/applytrack/pkg/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationRepository is the concrete store for application rows.
type ApplicationRepository struct {
	db *pgxpool.Pool
}

const applicationColumns = `
	id, job_title, company_name, location, job_type, work_model, industry,
	application_date, job_url, company_website, job_description, salary_range,
	deadline, source, source_details, resume_version, cover_letter_used,
	cover_letter_version, portfolio_submitted, recruiter_name, recruiter_email,
	recruiter_phone, hr_contact, hiring_manager, match_score, interest_level,
	priority, keywords, skills_required, skills_have, skills_need, status,
	notes, interview_notes, questions_to_ask, red_flags, culture_notes,
	created_at, updated_at, archived`

// applicationUpdateCols lists every column the update path may touch.
var applicationUpdateCols = map[string]bool{
	"job_title": true, "company_name": true, "location": true, "job_type": true,
	"work_model": true, "industry": true, "application_date": true,
	"job_url": true, "company_website": true, "job_description": true,
	"salary_range": true, "deadline": true, "source": true,
	"source_details": true, "resume_version": true, "cover_letter_used": true,
	"cover_letter_version": true, "portfolio_submitted": true,
	"recruiter_name": true, "recruiter_email": true, "recruiter_phone": true,
	"hr_contact": true, "hiring_manager": true, "match_score": true,
	"interest_level": true, "priority": true, "keywords": true,
	"skills_required": true, "skills_have": true, "skills_need": true,
	"status": true, "notes": true, "interview_notes": true,
	"questions_to_ask": true, "red_flags": true, "culture_notes": true,
	"archived": true,
}

func scanApplication(row pgx.Row) (*model.Application, error) {
	var a model.Application
	err := row.Scan(
		&a.ID, &a.JobTitle, &a.CompanyName, &a.Location, &a.JobType,
		&a.WorkModel, &a.Industry, &a.ApplicationDate, &a.JobURL,
		&a.CompanyWebsite, &a.JobDescription, &a.SalaryRange, &a.Deadline,
		&a.Source, &a.SourceDetails, &a.ResumeVersion, &a.CoverLetterUsed,
		&a.CoverLetterVersion, &a.PortfolioSubmitted, &a.RecruiterName,
		&a.RecruiterEmail, &a.RecruiterPhone, &a.HRContact, &a.HiringManager,
		&a.MatchScore, &a.InterestLevel, &a.Priority, &a.Keywords,
		&a.SkillsRequired, &a.SkillsHave, &a.SkillsNeed, &a.Status, &a.Notes,
		&a.InterviewNotes, &a.QuestionsToAsk, &a.RedFlags, &a.CultureNotes,
		&a.CreatedAt, &a.UpdatedAt, &a.Archived,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r ApplicationRepository) Create(ctx context.Context, a *model.Application) (*model.Application, error) {
	const q = `
INSERT INTO applications (
	job_title, company_name, location, job_type, work_model, industry,
	application_date, job_url, company_website, job_description, salary_range,
	deadline, source, source_details, resume_version, cover_letter_used,
	cover_letter_version, portfolio_submitted, recruiter_name, recruiter_email,
	recruiter_phone, hr_contact, hiring_manager, match_score, interest_level,
	priority, keywords, skills_required, skills_have, skills_need, status,
	notes, interview_notes, questions_to_ask, red_flags, culture_notes, archived
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
	$31, $32, $33, $34, $35, $36, $37
) RETURNING` + applicationColumns

	row := r.db.QueryRow(ctx, q,
		a.JobTitle, a.CompanyName, a.Location, a.JobType, a.WorkModel,
		a.Industry, a.ApplicationDate, a.JobURL, a.CompanyWebsite,
		a.JobDescription, a.SalaryRange, a.Deadline, a.Source, a.SourceDetails,
		a.ResumeVersion, a.CoverLetterUsed, a.CoverLetterVersion,
		a.PortfolioSubmitted, a.RecruiterName, a.RecruiterEmail,
		a.RecruiterPhone, a.HRContact, a.HiringManager, a.MatchScore,
		a.InterestLevel, a.Priority, a.Keywords, a.SkillsRequired,
		a.SkillsHave, a.SkillsNeed, a.Status, a.Notes, a.InterviewNotes,
		a.QuestionsToAsk, a.RedFlags, a.CultureNotes, a.Archived,
	)

	created, err := scanApplication(row)
	if err != nil {
		return nil, wrapErr("insert application", err)
	}
	return created, nil
}

func (r ApplicationRepository) GetByID(ctx context.Context, id int64) (*model.Application, error) {
	const q = `SELECT` + applicationColumns + ` FROM applications WHERE id = $1`

	a, err := scanApplication(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, wrapErr("get application", err)
	}
	return a, nil
}

func (r ApplicationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	const q = `SELECT EXISTS (SELECT 1 FROM applications WHERE id = $1)`
	if err := r.db.QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, wrapErr("check application exists", err)
	}
	return exists, nil
}

// List returns up to limit applications after skipping offset rows in
// insertion order, plus the unpaginated total.
func (r ApplicationRepository) List(ctx context.Context, limit, offset int) ([]model.Application, int, error) {
	var total int
	const countQ = `SELECT COUNT(1) FROM applications`
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, wrapErr("count applications", err)
	}

	const q = `SELECT` + applicationColumns + ` FROM applications ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, 0, wrapErr("query applications", err)
	}
	defer rows.Close()

	out := make([]model.Application, 0, limit)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan application row: %w", err)
		}
		out = append(out, *a)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, total, nil
}

// Update applies the supplied column/value pairs to one application and
// returns the resulting row. updated_at is always refreshed, even when
// updates is empty. A status change is recorded in status_history inside the
// same transaction.
func (r ApplicationRepository) Update(ctx context.Context, id int64, updates map[string]any) (*model.Application, error) {
	var updated *model.Application

	err := execTx(ctx, r.db, func(tx pgx.Tx) error {
		// Lock the row so the old status read and the history insert agree.
		var oldStatus string
		const lockQ = `SELECT status FROM applications WHERE id = $1 FOR UPDATE`
		if err := tx.QueryRow(ctx, lockQ, id).Scan(&oldStatus); err != nil {
			return wrapErr("lock application", err)
		}

		setClause, args := buildUpdate(updates, applicationUpdateCols, 0)
		args = append(args, id)
		q := fmt.Sprintf(
			"UPDATE applications SET updated_at = now()%s WHERE id = $%d RETURNING%s",
			setClause, len(args), applicationColumns,
		)

		a, err := scanApplication(tx.QueryRow(ctx, q, args...))
		if err != nil {
			return wrapErr("update application", err)
		}

		if newStatus, ok := updates["status"].(string); ok && newStatus != oldStatus {
			const histQ = `
INSERT INTO status_history (application_id, old_status, new_status)
VALUES ($1, $2, $3)`
			if _, err := tx.Exec(ctx, histQ, id, oldStatus, newStatus); err != nil {
				return wrapErr("record status change", err)
			}
		}

		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an application together with its history, interviews and
// reminders in one transaction.
func (r ApplicationRepository) Delete(ctx context.Context, id int64) error {
	return execTx(ctx, r.db, func(tx pgx.Tx) error {
		children := []string{
			`DELETE FROM reminders WHERE application_id = $1`,
			`DELETE FROM interviews WHERE application_id = $1`,
			`DELETE FROM status_history WHERE application_id = $1`,
		}
		for _, q := range children {
			if _, err := tx.Exec(ctx, q, id); err != nil {
				return wrapErr("delete application children", err)
			}
		}

		tag, err := tx.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
		if err != nil {
			return wrapErr("delete application", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("delete application: %w", ErrNotFound)
		}
		return nil
	})
}
