package dto

import (
	"time"

	"github.com/careerconnect/backend/internal/model"
	"github.com/google/uuid"
)

type ApplicationDTO struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	Status      string    `json:"status"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	ResumeURL   string    `json:"resume_url,omitempty"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	JobTitle    string    `json:"job_title,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
}

func NewApplicationDTO(a *model.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		Status:      string(a.Status),
		CoverLetter: a.CoverLetter,
		ResumeURL:   a.ResumeURL,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
		JobTitle:    a.Job.Title,
		CompanyName: a.Job.Company.Name,
	}
}

func NewApplicationDTOs(apps []model.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationDTO(&apps[i]))
	}
	return out
}
