package model

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewing Status = "reviewing"
	StatusInterview Status = "interview"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusInterview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Terminal statuses have no outgoing transitions.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// statusTransitions is the full edge set of the application state machine.
// Reviewers may skip straight from pending to a terminal decision.
var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusReviewing, StatusInterview, StatusAccepted, StatusRejected},
	StatusReviewing: {StatusInterview, StatusAccepted, StatusRejected},
	StatusInterview: {StatusAccepted, StatusRejected},
	StatusAccepted:  {},
	StatusRejected:  {},
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application records one applicant's submission against one posting. The
// composite unique index on (job_id, applicant_id) is the authoritative
// guard against duplicate submissions; the database enforces it even when
// two requests race. Applications are never deleted, only transitioned.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`
	Job         Job       `json:"job,omitempty"`
	Applicant   Profile   `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	Status      Status    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`
	ResumeURL   string    `json:"resume_url"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (a *Application) TableName() string {
	return "applications"
}
