package repository

import (
	"context"
	"errors"
	"time"

	"github.com/careerconnect/backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

// Create inserts the application in a single statement. The unique index on
// (job_id, applicant_id) is the source of truth for duplicates: a conflict
// comes back as ErrDuplicateApplication, never as a second row.
func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateApplication
	}
	return err
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &app, err
}

func (r *ApplicationRepository) Exists(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&n).Error
	return n > 0, err
}

// ListByApplicant returns an applicant's submissions, newest first. A nil
// status means no filter.
func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID, status *model.Status) ([]model.Application, error) {
	q := r.db.WithContext(ctx).
		Preload("Job.Company").
		Where("applicant_id = ?", applicantID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var apps []model.Application
	err := q.Order("applied_at DESC, id ASC").Find(&apps).Error
	return apps, err
}

// ListByJob returns a posting's applicants for review, newest first.
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant.Skills.Skill").
		Where("job_id = ?", jobID).
		Order("applied_at DESC, id ASC").
		Find(&apps).Error
	return apps, err
}

// UpdateStatus moves an application from one status to another with a
// guarded UPDATE. Zero rows affected means the stored status no longer
// matches from, i.e. a concurrent transition won.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.Status) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":     to,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}
