package usecase

import (
	"testing"

	"github.com/careerconnect/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletenessOnlyFullName(t *testing.T) {
	uc := NewProfileUsecase(nil, nil)
	p := &model.Profile{FullName: "Ada Lovelace"}

	assert.Equal(t, 13, uc.Completeness(p))

	missing := uc.MissingSignals(p)
	assert.Equal(t, []string{
		"Add a professional headline",
		"Write a short bio",
		"Add your location",
		"Select your experience level",
		"Add at least one skill",
		"Link a LinkedIn, GitHub, or website profile",
		"Upload a profile photo",
	}, missing)
}

func TestCompletenessEmptyAndFull(t *testing.T) {
	uc := NewProfileUsecase(nil, nil)

	assert.Equal(t, 0, uc.Completeness(&model.Profile{}))
	assert.Len(t, uc.MissingSignals(&model.Profile{}), 8)

	full := &model.Profile{
		FullName:        "Ada Lovelace",
		Headline:        "Engineer",
		Bio:             "I build things",
		Location:        "London",
		ExperienceLevel: model.ExperienceSenior,
		GithubURL:       "https://github.com/ada",
		ProfileImageURL: "https://cdn/ada.png",
		Skills:          []model.UserSkill{{Proficiency: model.ProficiencyExpert}},
	}
	assert.Equal(t, 100, uc.Completeness(full))
	assert.Empty(t, uc.MissingSignals(full))
}

// Adding a previously-absent signal must never lower the score.
func TestCompletenessMonotonic(t *testing.T) {
	uc := NewProfileUsecase(nil, nil)

	additions := []func(*model.Profile){
		func(p *model.Profile) { p.Headline = "Engineer" },
		func(p *model.Profile) { p.Bio = "bio" },
		func(p *model.Profile) { p.FullName = "Ada" },
		func(p *model.Profile) { p.Skills = []model.UserSkill{{}} },
		func(p *model.Profile) { p.Website = "https://ada.dev" },
		func(p *model.Profile) { p.Location = "London" },
		func(p *model.Profile) { p.ProfileImageURL = "https://cdn/a.png" },
		func(p *model.Profile) { p.ExperienceLevel = model.ExperienceMid },
	}

	p := &model.Profile{}
	prev := uc.Completeness(p)
	for _, add := range additions {
		add(p)
		score := uc.Completeness(p)
		assert.GreaterOrEqual(t, score, prev)
		assert.LessOrEqual(t, score, 100)
		prev = score
	}
	assert.Equal(t, 100, prev)
}

func TestGroupSkillsByCategory(t *testing.T) {
	uc := NewProfileUsecase(nil, nil)
	p := &model.Profile{
		Skills: []model.UserSkill{
			{Skill: model.Skill{Name: "Go", Category: "Programming Languages"}},
			{Skill: model.Skill{Name: "Docker", Category: "Cloud & DevOps"}},
			{Skill: model.Skill{Name: "Python", Category: "Programming Languages"}},
			{Skill: model.Skill{Name: "Bartending"}},
		},
	}

	groups := uc.GroupSkillsByCategory(p)
	require.Len(t, groups, 3)

	assert.Equal(t, "Programming Languages", groups[0].Category)
	assert.Len(t, groups[0].Skills, 2)
	assert.Equal(t, "Cloud & DevOps", groups[1].Category)
	assert.Equal(t, UncategorizedBucket, groups[2].Category)
	assert.Equal(t, "Bartending", groups[2].Skills[0].Skill.Name)
}

func TestGroupSkillsByCategoryEmpty(t *testing.T) {
	uc := NewProfileUsecase(nil, nil)
	assert.Empty(t, uc.GroupSkillsByCategory(&model.Profile{}))
}

func TestMatchSkills(t *testing.T) {
	catalog := []model.Skill{
		{Name: "PostgreSQL", Category: "Databases"},
		{Name: "Kubernetes", Category: "Cloud & DevOps"},
		{Name: "Figma", Category: "Design"},
	}

	text := "Seven years running postgresql clusters and Kubernetes workloads."
	found := MatchSkills(text, catalog)
	require.Len(t, found, 2)
	assert.Equal(t, "PostgreSQL", found[0].Name)
	assert.Equal(t, "Kubernetes", found[1].Name)
}

func TestMatchSkillsFoldsDiacritics(t *testing.T) {
	catalog := []model.Skill{{Name: "Réact"}}
	found := MatchSkills("shipped react dashboards", catalog)
	require.Len(t, found, 1)
}
