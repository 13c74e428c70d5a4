package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/repository"
	"github.com/careerconnect/backend/internal/search"
	"github.com/careerconnect/backend/internal/service"
	"github.com/careerconnect/backend/internal/stats"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type JobStore interface {
	JobFinder
	Search(ctx context.Context, c search.Criteria) ([]model.Job, error)
	CountActive(ctx context.Context, c search.Criteria) (int64, error)
	Create(ctx context.Context, job *model.Job) error
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Job, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	SetEmbedding(ctx context.Context, id uuid.UUID, emb pgvector.Vector) error
	ListMissingEmbedding(ctx context.Context, limit int) ([]model.Job, error)
	SearchSimilar(ctx context.Context, exclude uuid.UUID, emb pgvector.Vector, topK int) ([]model.Job, error)
}

type CompanyFinder interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Company, error)
}

type JobUsecase struct {
	jobs      JobStore
	companies CompanyFinder
	embedder  service.EmbeddingServiceInterface
	now       func() time.Time
}

func NewJobUsecase(jobs JobStore, companies CompanyFinder, embedder service.EmbeddingServiceInterface) *JobUsecase {
	return &JobUsecase{
		jobs:      jobs,
		companies: companies,
		embedder:  embedder,
		now:       time.Now,
	}
}

// Search runs the composed filter query. With an empty Criteria it returns
// every active posting, newest first.
func (uc *JobUsecase) Search(ctx context.Context, c search.Criteria) ([]model.Job, error) {
	jobs, err := uc.jobs.Search(ctx, c)
	if err != nil {
		return nil, storeErr(err)
	}
	return jobs, nil
}

func (uc *JobUsecase) CountActive(ctx context.Context, c search.Criteria) (int64, error) {
	n, err := uc.jobs.CountActive(ctx, c)
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func (uc *JobUsecase) Get(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	job, err := uc.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, storeErr(err)
	}
	return job, nil
}

type CreateJobInput struct {
	Title           string
	Description     string
	Location        string
	JobType         model.JobType
	WorkArrangement model.WorkArrangement
	ExperienceLevel model.ExperienceLevel
	SalaryMin       *int
	SalaryMax       *int
	SalaryCurrency  string
	Deadline        *time.Time
	SkillIDs        []uuid.UUID
	RequiredSkillID map[uuid.UUID]bool
}

func (in *CreateJobInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		fields["description"] = "description is required"
	}
	if !in.JobType.Valid() {
		fields["job_type"] = "unknown job type"
	}
	if !in.WorkArrangement.Valid() {
		fields["work_arrangement"] = "unknown work arrangement"
	}
	if !in.ExperienceLevel.Valid() {
		fields["experience_level"] = "unknown experience level"
	}
	if in.SalaryMin != nil && *in.SalaryMin < 0 {
		fields["salary_min"] = "salary must not be negative"
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		fields["salary_max"] = "salary maximum is below the minimum"
	}
	if len(fields) > 0 {
		return newValidationError(fields)
	}
	return nil
}

// Create publishes a posting for the actor's company. The embedding is
// generated in the background; a posting exists whether or not that call
// succeeds.
func (uc *JobUsecase) Create(ctx context.Context, ownerID uuid.UUID, in CreateJobInput) (*model.Job, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	company, err := uc.companies.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, storeErr(err)
	}

	currency := in.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	job := &model.Job{
		ID:              uuid.New(),
		CompanyID:       company.ID,
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		Location:        strings.TrimSpace(in.Location),
		JobType:         in.JobType,
		WorkArrangement: in.WorkArrangement,
		ExperienceLevel: in.ExperienceLevel,
		SalaryMin:       in.SalaryMin,
		SalaryMax:       in.SalaryMax,
		SalaryCurrency:  currency,
		IsActive:        true,
		Deadline:        in.Deadline,
		CreatedAt:       uc.now(),
		UpdatedAt:       uc.now(),
	}
	for _, skillID := range in.SkillIDs {
		job.Skills = append(job.Skills, model.JobSkill{
			ID:         uuid.New(),
			JobID:      job.ID,
			SkillID:    skillID,
			IsRequired: in.RequiredSkillID[skillID],
		})
	}

	if err := uc.jobs.Create(ctx, job); err != nil {
		return nil, storeErr(err)
	}

	if uc.embedder != nil {
		go uc.embedJob(job.ID, job.Title+"\n\n"+job.Description)
	}
	return job, nil
}

func (uc *JobUsecase) embedJob(id uuid.UUID, text string) {
	ctx := context.Background()
	emb, err := uc.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		log.Printf("embedding for job %s skipped: %v", id, err)
		return
	}
	if err := uc.jobs.SetEmbedding(ctx, id, pgvector.NewVector(emb)); err != nil {
		log.Printf("storing embedding for job %s failed: %v", id, err)
	}
}

// Deactivate stops a posting from accepting applications. The posting and
// its applications stay around for history.
func (uc *JobUsecase) Deactivate(ctx context.Context, ownerID, jobID uuid.UUID) error {
	job, err := uc.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJobNotFound
		}
		return storeErr(err)
	}
	if job.Company.OwnerID != ownerID {
		return ErrNotJobOwner
	}
	if err := uc.jobs.Deactivate(ctx, jobID); err != nil {
		return storeErr(err)
	}
	return nil
}

// Similar recommends active postings close to the given one in embedding
// space. Postings without a vector yet simply never appear.
func (uc *JobUsecase) Similar(ctx context.Context, jobID uuid.UUID, topK int) ([]model.Job, error) {
	if topK <= 0 {
		topK = 5
	}
	job, err := uc.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, storeErr(err)
	}
	if len(job.Embedding.Slice()) == 0 {
		return nil, nil
	}
	jobs, err := uc.jobs.SearchSimilar(ctx, jobID, job.Embedding, topK)
	if err != nil {
		return nil, storeErr(err)
	}
	return jobs, nil
}

// ListForCompany returns every posting a company has published, including
// deactivated ones.
func (uc *JobUsecase) ListForCompany(ctx context.Context, companyID uuid.UUID) ([]model.Job, error) {
	jobs, err := uc.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, storeErr(err)
	}
	return jobs, nil
}

// StatsForCompany summarizes the owner's postings for the recruiter
// dashboard.
func (uc *JobUsecase) StatsForCompany(ctx context.Context, companyID uuid.UUID) (stats.CompanyJobCounts, error) {
	jobs, err := uc.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return stats.CompanyJobCounts{}, storeErr(err)
	}
	return stats.CountCompanyJobs(jobs), nil
}

// BackfillEmbeddings generates vectors for postings created while the
// embedding service was unavailable. Run at startup.
func (uc *JobUsecase) BackfillEmbeddings(ctx context.Context, limit int) {
	if uc.embedder == nil {
		return
	}
	jobs, err := uc.jobs.ListMissingEmbedding(ctx, limit)
	if err != nil {
		log.Printf("embedding backfill query failed: %v", err)
		return
	}
	for _, job := range jobs {
		uc.embedJob(job.ID, job.Title+"\n\n"+job.Description)
	}
}
