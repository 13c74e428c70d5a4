package model

import (
	"time"

	"github.com/google/uuid"
)

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

// Profile is the applicant-facing record for an account. Its ID is the
// opaque account id handed in by the identity provider, so there is exactly
// one profile per account.
type Profile struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Email           string          `gorm:"not null" json:"email"`
	FullName        string          `json:"full_name"`
	Headline        string          `json:"headline"`
	Bio             string          `gorm:"type:text" json:"bio"`
	Location        string          `json:"location"`
	Phone           string          `json:"phone"`
	Website         string          `json:"website"`
	LinkedinURL     string          `json:"linkedin_url"`
	GithubURL       string          `json:"github_url"`
	ProfileImageURL string          `json:"profile_image_url"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20)" json:"experience_level"`
	IsRecruiter     bool            `gorm:"default:false" json:"is_recruiter"`
	IsActive        bool            `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Skills []UserSkill `gorm:"foreignKey:ProfileID" json:"skills,omitempty"`
}

func (p *Profile) TableName() string {
	return "profiles"
}

type UserSkill struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"profile_id"`
	SkillID         uuid.UUID   `gorm:"type:uuid;not null" json:"skill_id"`
	Skill           Skill       `json:"skill,omitempty"`
	Proficiency     Proficiency `gorm:"type:varchar(20)" json:"proficiency_level"`
	YearsExperience *int        `json:"years_experience"`
}

func (us *UserSkill) TableName() string {
	return "user_skills"
}
