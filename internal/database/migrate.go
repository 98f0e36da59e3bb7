package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema holds the idempotent DDL applied at startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS applications (
		id                   BIGSERIAL PRIMARY KEY,
		job_title            TEXT NOT NULL,
		company_name         TEXT NOT NULL,
		location             TEXT,
		job_type             TEXT,
		work_model           TEXT,
		industry             TEXT,
		application_date     DATE NOT NULL DEFAULT CURRENT_DATE,
		job_url              TEXT,
		company_website      TEXT,
		job_description      TEXT,
		salary_range         TEXT,
		deadline             DATE,
		source               TEXT,
		source_details       TEXT,
		resume_version       TEXT,
		cover_letter_used    BOOLEAN NOT NULL DEFAULT FALSE,
		cover_letter_version TEXT,
		portfolio_submitted  BOOLEAN NOT NULL DEFAULT FALSE,
		recruiter_name       TEXT,
		recruiter_email      TEXT,
		recruiter_phone      TEXT,
		hr_contact           TEXT,
		hiring_manager       TEXT,
		match_score          INTEGER,
		interest_level       INTEGER,
		priority             TEXT NOT NULL DEFAULT 'Medium',
		keywords             TEXT,
		skills_required      TEXT,
		skills_have          TEXT,
		skills_need          TEXT,
		status               TEXT NOT NULL DEFAULT 'To Apply',
		notes                TEXT,
		interview_notes      TEXT,
		questions_to_ask     TEXT,
		red_flags            TEXT,
		culture_notes        TEXT,
		created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
		archived             BOOLEAN NOT NULL DEFAULT FALSE
	)`,

	`CREATE TABLE IF NOT EXISTS status_history (
		id             BIGSERIAL PRIMARY KEY,
		application_id BIGINT NOT NULL REFERENCES applications(id) ON DELETE CASCADE,
		old_status     TEXT,
		new_status     TEXT NOT NULL,
		changed_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		notes          TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_status_history_application ON status_history (application_id)`,

	`CREATE TABLE IF NOT EXISTS interviews (
		id                 BIGSERIAL PRIMARY KEY,
		application_id     BIGINT NOT NULL REFERENCES applications(id) ON DELETE CASCADE,
		interview_type     TEXT NOT NULL,
		interview_date     DATE NOT NULL,
		interview_time     TEXT,
		interviewer_name   TEXT,
		interviewer_title  TEXT,
		location           TEXT,
		meeting_link       TEXT,
		preparation_status TEXT NOT NULL DEFAULT 'Pending',
		outcome            TEXT,
		notes              TEXT,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interviews_application ON interviews (application_id)`,

	`CREATE TABLE IF NOT EXISTS reminders (
		id             BIGSERIAL PRIMARY KEY,
		application_id BIGINT NOT NULL REFERENCES applications(id) ON DELETE CASCADE,
		reminder_type  TEXT,
		reminder_date  DATE,
		reminder_time  TEXT,
		message        TEXT NOT NULL,
		completed      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reminders_application ON reminders (application_id)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id           BIGSERIAL PRIMARY KEY,
		goal_type    TEXT NOT NULL,
		target_value INTEGER NOT NULL,
		time_period  TEXT,
		start_date   DATE,
		end_date     DATE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
