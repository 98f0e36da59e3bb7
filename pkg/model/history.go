package model

import "time"

// StatusHistory is an immutable log row recording one status transition for
// an application. Rows are written by the update path when the status
// changes; there is no direct write endpoint.
type StatusHistory struct {
	ID            int64     `json:"id" db:"id"`
	ApplicationID int64     `json:"application_id" db:"application_id"`
	OldStatus     *string   `json:"old_status" db:"old_status"`
	NewStatus     string    `json:"new_status" db:"new_status"`
	ChangedAt     time.Time `json:"changed_at" db:"changed_at"`
	Notes         *string   `json:"notes" db:"notes"`
}
