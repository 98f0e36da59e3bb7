package model

import "time"

type Reminder struct {
	ID            int64     `json:"id" db:"id"`
	ApplicationID int64     `json:"application_id" db:"application_id"`
	ReminderType  *string   `json:"reminder_type" db:"reminder_type"`
	ReminderDate  *Date     `json:"reminder_date" db:"reminder_date"`
	ReminderTime  *string   `json:"reminder_time" db:"reminder_time"`
	Message       string    `json:"message" db:"message"`
	Completed     bool      `json:"completed" db:"completed"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type CreateReminderRequest struct {
	ReminderType *string `json:"reminder_type"`
	ReminderDate *Date   `json:"reminder_date"`
	ReminderTime *string `json:"reminder_time"`
	Message      string  `json:"message" binding:"required"`
	Completed    *bool   `json:"completed"`
}

func (r *CreateReminderRequest) ToReminder(applicationID int64) *Reminder {
	rem := &Reminder{
		ApplicationID: applicationID,
		ReminderType:  r.ReminderType,
		ReminderDate:  r.ReminderDate,
		ReminderTime:  r.ReminderTime,
		Message:       r.Message,
	}
	if r.Completed != nil {
		rem.Completed = *r.Completed
	}
	return rem
}

type UpdateReminderRequest struct {
	ReminderType Optional[string] `json:"reminder_type"`
	ReminderDate Optional[Date]   `json:"reminder_date"`
	ReminderTime Optional[string] `json:"reminder_time"`
	Message      Optional[string] `json:"message"`
	Completed    Optional[bool]   `json:"completed"`
}

func (r *UpdateReminderRequest) Updates() (map[string]any, error) {
	u := make(map[string]any)

	if err := putRequired(u, "message", r.Message); err != nil {
		return nil, err
	}
	if err := putRequired(u, "completed", r.Completed); err != nil {
		return nil, err
	}

	put(u, "reminder_type", r.ReminderType)
	put(u, "reminder_date", r.ReminderDate)
	put(u, "reminder_time", r.ReminderTime)

	return u, nil
}
