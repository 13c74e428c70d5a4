package repository

import (
	"context"
	"errors"

	"github.com/careerconnect/backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	err := r.db.WithContext(ctx).Create(company).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateCompany
	}
	return err
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var c model.Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &c, err
}

func (r *CompanyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Company, error) {
	var c model.Company
	err := r.db.WithContext(ctx).First(&c, "owner_id = ?", ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &c, err
}

func (r *CompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&companies).Error
	return companies, err
}
