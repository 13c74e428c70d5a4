package dto

import (
	"time"

	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/usecase"
	"github.com/google/uuid"
)

type ProfileDTO struct {
	ID              uuid.UUID            `json:"id"`
	Email           string               `json:"email"`
	FullName        string               `json:"full_name"`
	Headline        string               `json:"headline"`
	Bio             string               `json:"bio"`
	Location        string               `json:"location"`
	Phone           string               `json:"phone"`
	Website         string               `json:"website"`
	LinkedinURL     string               `json:"linkedin_url"`
	GithubURL       string               `json:"github_url"`
	ProfileImageURL string               `json:"profile_image_url"`
	ExperienceLevel string               `json:"experience_level"`
	IsRecruiter     bool                 `json:"is_recruiter"`
	CreatedAt       time.Time            `json:"created_at"`
	SkillGroups     []usecase.SkillGroup `json:"skill_groups"`
	Completeness    int                  `json:"completeness"`
	MissingSignals  []string             `json:"missing_signals,omitempty"`
}

func NewProfileDTO(p *model.Profile, uc *usecase.ProfileUsecase) ProfileDTO {
	return ProfileDTO{
		ID:              p.ID,
		Email:           p.Email,
		FullName:        p.FullName,
		Headline:        p.Headline,
		Bio:             p.Bio,
		Location:        p.Location,
		Phone:           p.Phone,
		Website:         p.Website,
		LinkedinURL:     p.LinkedinURL,
		GithubURL:       p.GithubURL,
		ProfileImageURL: p.ProfileImageURL,
		ExperienceLevel: string(p.ExperienceLevel),
		IsRecruiter:     p.IsRecruiter,
		CreatedAt:       p.CreatedAt,
		SkillGroups:     uc.GroupSkillsByCategory(p),
		Completeness:    uc.Completeness(p),
		MissingSignals:  uc.MissingSignals(p),
	}
}
