package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeFreelance:
		return true
	}
	return false
}

type WorkArrangement string

const (
	WorkRemote WorkArrangement = "remote"
	WorkHybrid WorkArrangement = "hybrid"
	WorkOnSite WorkArrangement = "on-site"
)

func (w WorkArrangement) Valid() bool {
	switch w {
	case WorkRemote, WorkHybrid, WorkOnSite:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

func (e ExperienceLevel) Valid() bool {
	switch e {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	}
	return false
}

type Job struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"company_id"`
	Company         Company         `json:"company,omitempty"`
	Title           string          `gorm:"not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	Location        string          `json:"location"`
	JobType         JobType         `gorm:"type:varchar(20)" json:"job_type"`
	WorkArrangement WorkArrangement `gorm:"type:varchar(20)" json:"work_arrangement"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20)" json:"experience_level"`
	SalaryMin       *int            `json:"salary_min"`
	SalaryMax       *int            `json:"salary_max"`
	SalaryCurrency  string          `gorm:"default:'USD'" json:"salary_currency"`
	IsActive        bool            `gorm:"default:true" json:"is_active"`
	Deadline        *time.Time      `json:"application_deadline"`
	Embedding       pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Skills       []JobSkill    `json:"skills,omitempty"`
	Applications []Application `json:"applications,omitempty"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// AcceptsApplications reports whether a posting can still be applied to. A
// past deadline closes the posting even when the active flag was not cleared
// yet.
func (j *Job) AcceptsApplications(now time.Time) bool {
	if !j.IsActive {
		return false
	}
	if j.Deadline != nil && now.After(*j.Deadline) {
		return false
	}
	return true
}

// JobSkill links a posting to a catalog skill. Preferred skills are nice to
// have, required ones gate the role.
type JobSkill struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID      uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`
	SkillID    uuid.UUID `gorm:"type:uuid;not null" json:"skill_id"`
	Skill      Skill     `json:"skill,omitempty"`
	IsRequired bool      `gorm:"default:false" json:"is_required"`
}

func (js *JobSkill) TableName() string {
	return "job_skills"
}
