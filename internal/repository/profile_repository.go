package repository

import (
	"context"
	"errors"

	"github.com/careerconnect/backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// FindByID loads an active profile with its skills and their catalog
// entries.
func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var p model.Profile
	err := r.db.WithContext(ctx).
		Preload("Skills.Skill").
		First(&p, "id = ? AND is_active = ?", id, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &p, err
}

// ReplaceSkills swaps the profile's whole skill set in one transaction, the
// way the edit form saves it.
func (r *ProfileRepository) ReplaceSkills(ctx context.Context, profileID uuid.UUID, skills []model.UserSkill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", profileID).Delete(&model.UserSkill{}).Error; err != nil {
			return err
		}
		if len(skills) == 0 {
			return nil
		}
		return tx.Create(&skills).Error
	})
}
