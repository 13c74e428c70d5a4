package repository

import (
	"context"
	"errors"

	"github.com/careerconnect/backend/internal/model"
	"gorm.io/gorm"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db}
}

// List returns the whole catalog, alphabetical by name.
func (r *SkillRepository) List(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) FindByName(ctx context.Context, name string) (*model.Skill, error) {
	var s model.Skill
	err := r.db.WithContext(ctx).First(&s, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &s, err
}

func (r *SkillRepository) Create(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}
