package model

import "time"

// Goal is a standalone target (e.g. "applications per week") and is not
// linked to any application.
type Goal struct {
	ID          int64     `json:"id" db:"id"`
	GoalType    string    `json:"goal_type" db:"goal_type"`
	TargetValue int       `json:"target_value" db:"target_value"`
	TimePeriod  *string   `json:"time_period" db:"time_period"`
	StartDate   *Date     `json:"start_date" db:"start_date"`
	EndDate     *Date     `json:"end_date" db:"end_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateGoalRequest struct {
	GoalType    string  `json:"goal_type" binding:"required"`
	TargetValue *int    `json:"target_value" binding:"required"`
	TimePeriod  *string `json:"time_period"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
}

func (r *CreateGoalRequest) ToGoal() *Goal {
	return &Goal{
		GoalType:    r.GoalType,
		TargetValue: *r.TargetValue,
		TimePeriod:  r.TimePeriod,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}
