package repository

import (
	"context"
	"errors"

	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/search"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// Search returns active postings matching every set criterion, most recent
// first with id as the deterministic tie-breaker.
func (r *JobRepository) Search(ctx context.Context, c search.Criteria) ([]model.Job, error) {
	q := r.db.WithContext(ctx).
		Where("is_active = ?", true)

	if c.Keyword != "" {
		kw := "%" + c.Keyword + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", kw, kw)
	}
	if c.Location != "" {
		q = q.Where("location ILIKE ?", "%"+c.Location+"%")
	}
	if c.JobType != nil {
		q = q.Where("job_type = ?", *c.JobType)
	}
	if c.ExperienceLevel != nil {
		q = q.Where("experience_level = ?", *c.ExperienceLevel)
	}
	if c.WorkArrangement != nil {
		q = q.Where("work_arrangement = ?", *c.WorkArrangement)
	}
	if c.PageSize > 0 {
		page := c.Page
		if page < 1 {
			page = 1
		}
		q = q.Limit(c.PageSize).Offset((page - 1) * c.PageSize)
	}

	var jobs []model.Job
	err := q.Preload("Company").
		Order("created_at DESC, id ASC").
		Find(&jobs).Error
	return jobs, err
}

// CountActive counts the postings Search would consider with no pagination.
func (r *JobRepository) CountActive(ctx context.Context, c search.Criteria) (int64, error) {
	c.Page, c.PageSize = 0, 0
	q := r.db.WithContext(ctx).Model(&model.Job{}).Where("is_active = ?", true)
	if c.Keyword != "" {
		kw := "%" + c.Keyword + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", kw, kw)
	}
	if c.Location != "" {
		q = q.Where("location ILIKE ?", "%"+c.Location+"%")
	}
	if c.JobType != nil {
		q = q.Where("job_type = ?", *c.JobType)
	}
	if c.ExperienceLevel != nil {
		q = q.Where("experience_level = ?", *c.ExperienceLevel)
	}
	if c.WorkArrangement != nil {
		q = q.Where("work_arrangement = ?", *c.WorkArrangement)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var j model.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Skills.Skill").
		First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &j, err
}

func (r *JobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Preload("Applications").
		Where("company_id = ?", companyID).
		Order("created_at DESC, id ASC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&model.Job{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *JobRepository) SetEmbedding(ctx context.Context, id uuid.UUID, emb pgvector.Vector) error {
	return r.db.WithContext(ctx).
		Model(&model.Job{}).
		Where("id = ?", id).
		Update("embedding", emb).Error
}

// ListMissingEmbedding feeds the startup backfill.
func (r *JobRepository) ListMissingEmbedding(ctx context.Context, limit int) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND embedding IS NULL", true).
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

// SearchSimilar ranks other active postings by embedding distance to the
// given vector.
func (r *JobRepository) SearchSimilar(ctx context.Context, exclude uuid.UUID, emb pgvector.Vector, topK int) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).Raw(`
        SELECT * FROM jobs
        WHERE is_active = true AND embedding IS NOT NULL AND id <> ?
        ORDER BY embedding <-> ?
        LIMIT ?
    `, exclude, emb, topK).Scan(&jobs).Error
	return jobs, err
}
