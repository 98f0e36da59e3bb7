package model

import "time"

const DefaultPreparationStatus = "Pending"

type Interview struct {
	ID                int64     `json:"id" db:"id"`
	ApplicationID     int64     `json:"application_id" db:"application_id"`
	InterviewType     string    `json:"interview_type" db:"interview_type"`
	InterviewDate     Date      `json:"interview_date" db:"interview_date"`
	InterviewTime     *string   `json:"interview_time" db:"interview_time"`
	InterviewerName   *string   `json:"interviewer_name" db:"interviewer_name"`
	InterviewerTitle  *string   `json:"interviewer_title" db:"interviewer_title"`
	Location          *string   `json:"location" db:"location"`
	MeetingLink       *string   `json:"meeting_link" db:"meeting_link"`
	PreparationStatus string    `json:"preparation_status" db:"preparation_status"`
	Outcome           *string   `json:"outcome" db:"outcome"`
	Notes             *string   `json:"notes" db:"notes"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

type CreateInterviewRequest struct {
	InterviewType     string  `json:"interview_type" binding:"required"`
	InterviewDate     *Date   `json:"interview_date" binding:"required"`
	InterviewTime     *string `json:"interview_time"`
	InterviewerName   *string `json:"interviewer_name"`
	InterviewerTitle  *string `json:"interviewer_title"`
	Location          *string `json:"location"`
	MeetingLink       *string `json:"meeting_link"`
	PreparationStatus *string `json:"preparation_status"`
	Outcome           *string `json:"outcome"`
	Notes             *string `json:"notes"`
}

func (r *CreateInterviewRequest) ToInterview(applicationID int64) *Interview {
	iv := &Interview{
		ApplicationID:     applicationID,
		InterviewType:     r.InterviewType,
		InterviewDate:     *r.InterviewDate,
		InterviewTime:     r.InterviewTime,
		InterviewerName:   r.InterviewerName,
		InterviewerTitle:  r.InterviewerTitle,
		Location:          r.Location,
		MeetingLink:       r.MeetingLink,
		PreparationStatus: DefaultPreparationStatus,
		Outcome:           r.Outcome,
		Notes:             r.Notes,
	}
	if r.PreparationStatus != nil {
		iv.PreparationStatus = *r.PreparationStatus
	}
	return iv
}

type UpdateInterviewRequest struct {
	InterviewType     Optional[string] `json:"interview_type"`
	InterviewDate     Optional[Date]   `json:"interview_date"`
	InterviewTime     Optional[string] `json:"interview_time"`
	InterviewerName   Optional[string] `json:"interviewer_name"`
	InterviewerTitle  Optional[string] `json:"interviewer_title"`
	Location          Optional[string] `json:"location"`
	MeetingLink       Optional[string] `json:"meeting_link"`
	PreparationStatus Optional[string] `json:"preparation_status"`
	Outcome           Optional[string] `json:"outcome"`
	Notes             Optional[string] `json:"notes"`
}

func (r *UpdateInterviewRequest) Updates() (map[string]any, error) {
	u := make(map[string]any)

	if err := putRequired(u, "interview_type", r.InterviewType); err != nil {
		return nil, err
	}
	if err := putRequired(u, "interview_date", r.InterviewDate); err != nil {
		return nil, err
	}
	if err := putRequired(u, "preparation_status", r.PreparationStatus); err != nil {
		return nil, err
	}

	put(u, "interview_time", r.InterviewTime)
	put(u, "interviewer_name", r.InterviewerName)
	put(u, "interviewer_title", r.InterviewerTitle)
	put(u, "location", r.Location)
	put(u, "meeting_link", r.MeetingLink)
	put(u, "outcome", r.Outcome)
	put(u, "notes", r.Notes)

	return u, nil
}
