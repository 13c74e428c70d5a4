package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/repository"
	"github.com/careerconnect/backend/internal/util"
	"github.com/google/uuid"
)

type ProfileStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) error
	ReplaceSkills(ctx context.Context, profileID uuid.UUID, skills []model.UserSkill) error
}

type SkillLister interface {
	List(ctx context.Context) ([]model.Skill, error)
}

type ProfileUsecase struct {
	profiles ProfileStore
	skills   SkillLister
}

func NewProfileUsecase(profiles ProfileStore, skills SkillLister) *ProfileUsecase {
	return &ProfileUsecase{profiles: profiles, skills: skills}
}

func (uc *ProfileUsecase) Get(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	p, err := uc.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, storeErr(err)
	}
	return p, nil
}

type UpdateProfileInput struct {
	FullName        string `json:"full_name"`
	Headline        string `json:"headline"`
	Bio             string `json:"bio"`
	Location        string `json:"location"`
	Phone           string `json:"phone"`
	Website         string `json:"website"`
	LinkedinURL     string `json:"linkedin_url"`
	GithubURL       string `json:"github_url"`
	ProfileImageURL string `json:"profile_image_url"`
	ExperienceLevel string `json:"experience_level"`
}

func (uc *ProfileUsecase) Update(ctx context.Context, id uuid.UUID, in UpdateProfileInput) (*model.Profile, error) {
	if in.ExperienceLevel != "" && !model.ExperienceLevel(in.ExperienceLevel).Valid() {
		return nil, newValidationError(map[string]string{"experience_level": "unknown experience level"})
	}

	p, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p.FullName = strings.TrimSpace(in.FullName)
	p.Headline = strings.TrimSpace(in.Headline)
	p.Bio = strings.TrimSpace(in.Bio)
	p.Location = strings.TrimSpace(in.Location)
	p.Phone = strings.TrimSpace(in.Phone)
	p.Website = strings.TrimSpace(in.Website)
	p.LinkedinURL = strings.TrimSpace(in.LinkedinURL)
	p.GithubURL = strings.TrimSpace(in.GithubURL)
	p.ProfileImageURL = strings.TrimSpace(in.ProfileImageURL)
	p.ExperienceLevel = model.ExperienceLevel(in.ExperienceLevel)

	if err := uc.profiles.Update(ctx, p); err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

type UserSkillInput struct {
	SkillID         uuid.UUID
	Proficiency     model.Proficiency
	YearsExperience *int
}

// ReplaceSkills swaps the applicant's skill set, the way the edit form
// saves it as a whole.
func (uc *ProfileUsecase) ReplaceSkills(ctx context.Context, id uuid.UUID, inputs []UserSkillInput) error {
	skills := make([]model.UserSkill, 0, len(inputs))
	for _, in := range inputs {
		if !in.Proficiency.Valid() {
			return newValidationError(map[string]string{"proficiency_level": "unknown proficiency " + string(in.Proficiency)})
		}
		if in.YearsExperience != nil && *in.YearsExperience < 0 {
			return newValidationError(map[string]string{"years_experience": "years of experience must not be negative"})
		}
		skills = append(skills, model.UserSkill{
			ID:              uuid.New(),
			ProfileID:       id,
			SkillID:         in.SkillID,
			Proficiency:     in.Proficiency,
			YearsExperience: in.YearsExperience,
		})
	}
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}
	if err := uc.profiles.ReplaceSkills(ctx, id, skills); err != nil {
		return storeErr(err)
	}
	return nil
}

const completenessSignals = 8

// signalChecks lists the eight profile signals in the fixed order the
// completion prompts are shown in. Each is binary, no partial credit.
var signalChecks = []struct {
	prompt  string
	present func(*model.Profile) bool
}{
	{"Add your full name", func(p *model.Profile) bool { return p.FullName != "" }},
	{"Add a professional headline", func(p *model.Profile) bool { return p.Headline != "" }},
	{"Write a short bio", func(p *model.Profile) bool { return p.Bio != "" }},
	{"Add your location", func(p *model.Profile) bool { return p.Location != "" }},
	{"Select your experience level", func(p *model.Profile) bool { return p.ExperienceLevel != "" }},
	{"Add at least one skill", func(p *model.Profile) bool { return len(p.Skills) > 0 }},
	{"Link a LinkedIn, GitHub, or website profile", func(p *model.Profile) bool {
		return p.LinkedinURL != "" || p.GithubURL != "" || p.Website != ""
	}},
	{"Upload a profile photo", func(p *model.Profile) bool { return p.ProfileImageURL != "" }},
}

// Completeness scores a profile 0..100 as the rounded share of present
// signals.
func (uc *ProfileUsecase) Completeness(p *model.Profile) int {
	present := 0
	for _, s := range signalChecks {
		if s.present(p) {
			present++
		}
	}
	return int(math.Round(float64(present) / completenessSignals * 100))
}

// MissingSignals lists a completion prompt per absent signal, in the fixed
// signal order.
func (uc *ProfileUsecase) MissingSignals(p *model.Profile) []string {
	var missing []string
	for _, s := range signalChecks {
		if !s.present(p) {
			missing = append(missing, s.prompt)
		}
	}
	return missing
}

// SkillGroup is one category bucket in first-seen order. UncategorizedBucket
// collects skills whose catalog entry has no category; they are never
// dropped.
type SkillGroup struct {
	Category string            `json:"category"`
	Skills   []model.UserSkill `json:"skills"`
}

const UncategorizedBucket = "Uncategorized"

// GroupSkillsByCategory buckets a profile's skills by catalog category,
// preserving the order categories first appear in.
func (uc *ProfileUsecase) GroupSkillsByCategory(p *model.Profile) []SkillGroup {
	var groups []SkillGroup
	index := map[string]int{}
	for _, us := range p.Skills {
		category := us.Skill.Category
		if category == "" {
			category = UncategorizedBucket
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, SkillGroup{Category: category})
		}
		groups[i].Skills = append(groups[i].Skills, us)
	}
	return groups
}

// SuggestSkillsFromResume extracts text from a resume PDF and returns the
// catalog skills it mentions, for one-click adding in the profile editor.
func (uc *ProfileUsecase) SuggestSkillsFromResume(ctx context.Context, pdfPath string) ([]model.Skill, error) {
	text, err := util.ExtractResumeText(pdfPath)
	if err != nil {
		return nil, err
	}
	catalog, err := uc.skills.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return MatchSkills(text, catalog), nil
}

// MatchSkills returns the catalog skills mentioned in text, compared after
// diacritic folding and case normalization.
func MatchSkills(text string, catalog []model.Skill) []model.Skill {
	folded := util.Fold(text)
	var found []model.Skill
	for _, s := range catalog {
		if s.Name == "" {
			continue
		}
		if strings.Contains(folded, util.Fold(s.Name)) {
			found = append(found, s)
		}
	}
	return found
}
