package repository

import (
	"context"
	"fmt"

	"github.com/applytrack/applytrack/pkg/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GoalRepository struct {
	db *pgxpool.Pool
}

const goalColumns = `
	id, goal_type, target_value, time_period, start_date, end_date, created_at`

func scanGoal(row pgx.Row) (*model.Goal, error) {
	var g model.Goal
	err := row.Scan(
		&g.ID, &g.GoalType, &g.TargetValue, &g.TimePeriod, &g.StartDate,
		&g.EndDate, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r GoalRepository) Create(ctx context.Context, g *model.Goal) (*model.Goal, error) {
	const q = `
INSERT INTO goals (goal_type, target_value, time_period, start_date, end_date)
VALUES ($1, $2, $3, $4, $5)
RETURNING` + goalColumns

	row := r.db.QueryRow(ctx, q,
		g.GoalType, g.TargetValue, g.TimePeriod, g.StartDate, g.EndDate,
	)

	created, err := scanGoal(row)
	if err != nil {
		return nil, wrapErr("insert goal", err)
	}
	return created, nil
}

func (r GoalRepository) GetByID(ctx context.Context, id int64) (*model.Goal, error) {
	const q = `SELECT` + goalColumns + ` FROM goals WHERE id = $1`

	g, err := scanGoal(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, wrapErr("get goal", err)
	}
	return g, nil
}

func (r GoalRepository) List(ctx context.Context) ([]model.Goal, error) {
	const q = `SELECT` + goalColumns + ` FROM goals ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, wrapErr("query goals", err)
	}
	defer rows.Close()

	out := make([]model.Goal, 0, 8)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal row: %w", err)
		}
		out = append(out, *g)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r GoalRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return wrapErr("delete goal", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete goal: %w", ErrNotFound)
	}
	return nil
}
