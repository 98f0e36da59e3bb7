package model

import (
	"time"
)

// Defaults applied when the corresponding field is omitted at creation.
const (
	DefaultPriority = "Medium"
	DefaultStatus   = "To Apply"

	DefaultPageSize = 100
)

type Application struct {
	ID                 int64     `json:"id" db:"id"`
	JobTitle           string    `json:"job_title" db:"job_title"`
	CompanyName        string    `json:"company_name" db:"company_name"`
	Location           *string   `json:"location" db:"location"`
	JobType            *string   `json:"job_type" db:"job_type"`
	WorkModel          *string   `json:"work_model" db:"work_model"`
	Industry           *string   `json:"industry" db:"industry"`
	ApplicationDate    Date      `json:"application_date" db:"application_date"`
	JobURL             *string   `json:"job_url" db:"job_url"`
	CompanyWebsite     *string   `json:"company_website" db:"company_website"`
	JobDescription     *string   `json:"job_description" db:"job_description"`
	SalaryRange        *string   `json:"salary_range" db:"salary_range"`
	Deadline           *Date     `json:"deadline" db:"deadline"`
	Source             *string   `json:"source" db:"source"`
	SourceDetails      *string   `json:"source_details" db:"source_details"`
	ResumeVersion      *string   `json:"resume_version" db:"resume_version"`
	CoverLetterUsed    bool      `json:"cover_letter_used" db:"cover_letter_used"`
	CoverLetterVersion *string   `json:"cover_letter_version" db:"cover_letter_version"`
	PortfolioSubmitted bool      `json:"portfolio_submitted" db:"portfolio_submitted"`
	RecruiterName      *string   `json:"recruiter_name" db:"recruiter_name"`
	RecruiterEmail     *string   `json:"recruiter_email" db:"recruiter_email"`
	RecruiterPhone     *string   `json:"recruiter_phone" db:"recruiter_phone"`
	HRContact          *string   `json:"hr_contact" db:"hr_contact"`
	HiringManager      *string   `json:"hiring_manager" db:"hiring_manager"`
	MatchScore         *int      `json:"match_score" db:"match_score"`
	InterestLevel      *int      `json:"interest_level" db:"interest_level"`
	Priority           string    `json:"priority" db:"priority"`
	Keywords           *string   `json:"keywords" db:"keywords"`
	SkillsRequired     *string   `json:"skills_required" db:"skills_required"`
	SkillsHave         *string   `json:"skills_have" db:"skills_have"`
	SkillsNeed         *string   `json:"skills_need" db:"skills_need"`
	Status             string    `json:"status" db:"status"`
	Notes              *string   `json:"notes" db:"notes"`
	InterviewNotes     *string   `json:"interview_notes" db:"interview_notes"`
	QuestionsToAsk     *string   `json:"questions_to_ask" db:"questions_to_ask"`
	RedFlags           *string   `json:"red_flags" db:"red_flags"`
	CultureNotes       *string   `json:"culture_notes" db:"culture_notes"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
	Archived           bool      `json:"archived" db:"archived"`
}

type CreateApplicationRequest struct {
	JobTitle           string  `json:"job_title" binding:"required"`
	CompanyName        string  `json:"company_name" binding:"required"`
	Location           *string `json:"location"`
	JobType            *string `json:"job_type"`
	WorkModel          *string `json:"work_model"`
	Industry           *string `json:"industry"`
	ApplicationDate    *Date   `json:"application_date"`
	JobURL             *string `json:"job_url"`
	CompanyWebsite     *string `json:"company_website"`
	JobDescription     *string `json:"job_description"`
	SalaryRange        *string `json:"salary_range"`
	Deadline           *Date   `json:"deadline"`
	Source             *string `json:"source"`
	SourceDetails      *string `json:"source_details"`
	ResumeVersion      *string `json:"resume_version"`
	CoverLetterUsed    *bool   `json:"cover_letter_used"`
	CoverLetterVersion *string `json:"cover_letter_version"`
	PortfolioSubmitted *bool   `json:"portfolio_submitted"`
	RecruiterName      *string `json:"recruiter_name"`
	RecruiterEmail     *string `json:"recruiter_email"`
	RecruiterPhone     *string `json:"recruiter_phone"`
	HRContact          *string `json:"hr_contact"`
	HiringManager      *string `json:"hiring_manager"`
	MatchScore         *int    `json:"match_score"`
	InterestLevel      *int    `json:"interest_level"`
	Priority           *string `json:"priority"`
	Keywords           *string `json:"keywords"`
	SkillsRequired     *string `json:"skills_required"`
	SkillsHave         *string `json:"skills_have"`
	SkillsNeed         *string `json:"skills_need"`
	Status             *string `json:"status"`
	Notes              *string `json:"notes"`
	InterviewNotes     *string `json:"interview_notes"`
	QuestionsToAsk     *string `json:"questions_to_ask"`
	RedFlags           *string `json:"red_flags"`
	CultureNotes       *string `json:"culture_notes"`
	Archived           *bool   `json:"archived"`
}

// ToApplication maps a create payload onto a new record, filling creation
// defaults for fields the payload omitted.
func (r *CreateApplicationRequest) ToApplication() *Application {
	a := &Application{
		JobTitle:           r.JobTitle,
		CompanyName:        r.CompanyName,
		Location:           r.Location,
		JobType:            r.JobType,
		WorkModel:          r.WorkModel,
		Industry:           r.Industry,
		ApplicationDate:    Today(),
		JobURL:             r.JobURL,
		CompanyWebsite:     r.CompanyWebsite,
		JobDescription:     r.JobDescription,
		SalaryRange:        r.SalaryRange,
		Deadline:           r.Deadline,
		Source:             r.Source,
		SourceDetails:      r.SourceDetails,
		ResumeVersion:      r.ResumeVersion,
		CoverLetterVersion: r.CoverLetterVersion,
		RecruiterName:      r.RecruiterName,
		RecruiterEmail:     r.RecruiterEmail,
		RecruiterPhone:     r.RecruiterPhone,
		HRContact:          r.HRContact,
		HiringManager:      r.HiringManager,
		MatchScore:         r.MatchScore,
		InterestLevel:      r.InterestLevel,
		Priority:           DefaultPriority,
		Keywords:           r.Keywords,
		SkillsRequired:     r.SkillsRequired,
		SkillsHave:         r.SkillsHave,
		SkillsNeed:         r.SkillsNeed,
		Status:             DefaultStatus,
		Notes:              r.Notes,
		InterviewNotes:     r.InterviewNotes,
		QuestionsToAsk:     r.QuestionsToAsk,
		RedFlags:           r.RedFlags,
		CultureNotes:       r.CultureNotes,
	}

	if r.ApplicationDate != nil {
		a.ApplicationDate = *r.ApplicationDate
	}
	if r.Priority != nil {
		a.Priority = *r.Priority
	}
	if r.Status != nil {
		a.Status = *r.Status
	}
	if r.CoverLetterUsed != nil {
		a.CoverLetterUsed = *r.CoverLetterUsed
	}
	if r.PortfolioSubmitted != nil {
		a.PortfolioSubmitted = *r.PortfolioSubmitted
	}
	if r.Archived != nil {
		a.Archived = *r.Archived
	}

	return a
}

type UpdateApplicationRequest struct {
	JobTitle           Optional[string] `json:"job_title"`
	CompanyName        Optional[string] `json:"company_name"`
	Location           Optional[string] `json:"location"`
	JobType            Optional[string] `json:"job_type"`
	WorkModel          Optional[string] `json:"work_model"`
	Industry           Optional[string] `json:"industry"`
	ApplicationDate    Optional[Date]   `json:"application_date"`
	JobURL             Optional[string] `json:"job_url"`
	CompanyWebsite     Optional[string] `json:"company_website"`
	JobDescription     Optional[string] `json:"job_description"`
	SalaryRange        Optional[string] `json:"salary_range"`
	Deadline           Optional[Date]   `json:"deadline"`
	Source             Optional[string] `json:"source"`
	SourceDetails      Optional[string] `json:"source_details"`
	ResumeVersion      Optional[string] `json:"resume_version"`
	CoverLetterUsed    Optional[bool]   `json:"cover_letter_used"`
	CoverLetterVersion Optional[string] `json:"cover_letter_version"`
	PortfolioSubmitted Optional[bool]   `json:"portfolio_submitted"`
	RecruiterName      Optional[string] `json:"recruiter_name"`
	RecruiterEmail     Optional[string] `json:"recruiter_email"`
	RecruiterPhone     Optional[string] `json:"recruiter_phone"`
	HRContact          Optional[string] `json:"hr_contact"`
	HiringManager      Optional[string] `json:"hiring_manager"`
	MatchScore         Optional[int]    `json:"match_score"`
	InterestLevel      Optional[int]    `json:"interest_level"`
	Priority           Optional[string] `json:"priority"`
	Keywords           Optional[string] `json:"keywords"`
	SkillsRequired     Optional[string] `json:"skills_required"`
	SkillsHave         Optional[string] `json:"skills_have"`
	SkillsNeed         Optional[string] `json:"skills_need"`
	Status             Optional[string] `json:"status"`
	Notes              Optional[string] `json:"notes"`
	InterviewNotes     Optional[string] `json:"interview_notes"`
	QuestionsToAsk     Optional[string] `json:"questions_to_ask"`
	RedFlags           Optional[string] `json:"red_flags"`
	CultureNotes       Optional[string] `json:"culture_notes"`
	Archived           Optional[bool]   `json:"archived"`
}

// Updates collects the fields present in the payload into a column/value map.
// Omitted fields are not included; explicit nulls become SQL NULLs, except on
// NOT NULL columns where a null is a validation error.
func (r *UpdateApplicationRequest) Updates() (map[string]any, error) {
	u := make(map[string]any)

	if err := putRequired(u, "job_title", r.JobTitle); err != nil {
		return nil, err
	}
	if err := putRequired(u, "company_name", r.CompanyName); err != nil {
		return nil, err
	}
	if err := putRequired(u, "application_date", r.ApplicationDate); err != nil {
		return nil, err
	}
	if err := putRequired(u, "priority", r.Priority); err != nil {
		return nil, err
	}
	if err := putRequired(u, "status", r.Status); err != nil {
		return nil, err
	}
	if err := putRequired(u, "cover_letter_used", r.CoverLetterUsed); err != nil {
		return nil, err
	}
	if err := putRequired(u, "portfolio_submitted", r.PortfolioSubmitted); err != nil {
		return nil, err
	}
	if err := putRequired(u, "archived", r.Archived); err != nil {
		return nil, err
	}

	put(u, "location", r.Location)
	put(u, "job_type", r.JobType)
	put(u, "work_model", r.WorkModel)
	put(u, "industry", r.Industry)
	put(u, "job_url", r.JobURL)
	put(u, "company_website", r.CompanyWebsite)
	put(u, "job_description", r.JobDescription)
	put(u, "salary_range", r.SalaryRange)
	put(u, "deadline", r.Deadline)
	put(u, "source", r.Source)
	put(u, "source_details", r.SourceDetails)
	put(u, "resume_version", r.ResumeVersion)
	put(u, "cover_letter_version", r.CoverLetterVersion)
	put(u, "recruiter_name", r.RecruiterName)
	put(u, "recruiter_email", r.RecruiterEmail)
	put(u, "recruiter_phone", r.RecruiterPhone)
	put(u, "hr_contact", r.HRContact)
	put(u, "hiring_manager", r.HiringManager)
	put(u, "match_score", r.MatchScore)
	put(u, "interest_level", r.InterestLevel)
	put(u, "keywords", r.Keywords)
	put(u, "skills_required", r.SkillsRequired)
	put(u, "skills_have", r.SkillsHave)
	put(u, "skills_need", r.SkillsNeed)
	put(u, "notes", r.Notes)
	put(u, "interview_notes", r.InterviewNotes)
	put(u, "questions_to_ask", r.QuestionsToAsk)
	put(u, "red_flags", r.RedFlags)
	put(u, "culture_notes", r.CultureNotes)

	return u, nil
}

type ListApplicationsQuery struct {
	Skip  int `form:"skip,default=0"`
	Limit int `form:"limit,default=100"`
}
