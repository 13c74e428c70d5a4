package dto

import (
	"time"

	"github.com/careerconnect/backend/internal/model"
	"github.com/google/uuid"
)

type CompanySummaryDTO struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	LogoURL string    `json:"logo_url"`
}

type JobDTO struct {
	ID              uuid.UUID         `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Location        string            `json:"location"`
	JobType         string            `json:"job_type"`
	WorkArrangement string            `json:"work_arrangement"`
	ExperienceLevel string            `json:"experience_level"`
	SalaryMin       *int              `json:"salary_min"`
	SalaryMax       *int              `json:"salary_max"`
	SalaryCurrency  string            `json:"salary_currency"`
	IsActive        bool              `json:"is_active"`
	Deadline        *time.Time        `json:"application_deadline"`
	CreatedAt       time.Time         `json:"created_at"`
	Company         CompanySummaryDTO `json:"company"`
	Skills          []JobSkillDTO     `json:"skills,omitempty"`
}

type JobSkillDTO struct {
	SkillID    uuid.UUID `json:"skill_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	IsRequired bool      `json:"is_required"`
}

func NewJobDTO(j *model.Job) JobDTO {
	out := JobDTO{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Location:        j.Location,
		JobType:         string(j.JobType),
		WorkArrangement: string(j.WorkArrangement),
		ExperienceLevel: string(j.ExperienceLevel),
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		SalaryCurrency:  j.SalaryCurrency,
		IsActive:        j.IsActive,
		Deadline:        j.Deadline,
		CreatedAt:       j.CreatedAt,
		Company: CompanySummaryDTO{
			ID:      j.Company.ID,
			Name:    j.Company.Name,
			LogoURL: j.Company.LogoURL,
		},
	}
	for _, js := range j.Skills {
		out.Skills = append(out.Skills, JobSkillDTO{
			SkillID:    js.SkillID,
			Name:       js.Skill.Name,
			Category:   js.Skill.Category,
			IsRequired: js.IsRequired,
		})
	}
	return out
}

func NewJobDTOs(jobs []model.Job) []JobDTO {
	out := make([]JobDTO, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobDTO(&jobs[i]))
	}
	return out
}
