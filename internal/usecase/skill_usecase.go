package usecase

import (
	"context"

	"github.com/careerconnect/backend/internal/model"
)

type SkillUsecase struct {
	skills SkillLister
}

func NewSkillUsecase(skills SkillLister) *SkillUsecase {
	return &SkillUsecase{skills: skills}
}

// List returns the catalog alphabetically by name.
func (uc *SkillUsecase) List(ctx context.Context) ([]model.Skill, error) {
	skills, err := uc.skills.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return skills, nil
}

// CategoryGroup is one catalog category in first-seen order.
type CategoryGroup struct {
	Category string        `json:"category"`
	Skills   []model.Skill `json:"skills"`
}

// CategoriesOf groups skills by category, keeping the insertion order of
// each category's first occurrence.
func CategoriesOf(skills []model.Skill) []CategoryGroup {
	var groups []CategoryGroup
	index := map[string]int{}
	for _, s := range skills {
		category := s.Category
		if category == "" {
			category = UncategorizedBucket
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, CategoryGroup{Category: category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

// ListGrouped returns the catalog grouped for the skill picker.
func (uc *SkillUsecase) ListGrouped(ctx context.Context) ([]CategoryGroup, error) {
	skills, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return CategoriesOf(skills), nil
}
