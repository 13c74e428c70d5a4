package usecase

import (
	"context"
	"testing"

	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/repository"
	"github.com/careerconnect/backend/internal/search"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobStoreMock struct {
	SearchFn               func(ctx context.Context, c search.Criteria) ([]model.Job, error)
	CountActiveFn          func(ctx context.Context, c search.Criteria) (int64, error)
	CreateFn               func(ctx context.Context, job *model.Job) error
	FindByIDFn             func(ctx context.Context, id uuid.UUID) (*model.Job, error)
	ListByCompanyFn        func(ctx context.Context, companyID uuid.UUID) ([]model.Job, error)
	DeactivateFn           func(ctx context.Context, id uuid.UUID) error
	SetEmbeddingFn         func(ctx context.Context, id uuid.UUID, emb pgvector.Vector) error
	ListMissingEmbeddingFn func(ctx context.Context, limit int) ([]model.Job, error)
	SearchSimilarFn        func(ctx context.Context, exclude uuid.UUID, emb pgvector.Vector, topK int) ([]model.Job, error)
}

func (m *jobStoreMock) Search(ctx context.Context, c search.Criteria) ([]model.Job, error) {
	return m.SearchFn(ctx, c)
}
func (m *jobStoreMock) CountActive(ctx context.Context, c search.Criteria) (int64, error) {
	return m.CountActiveFn(ctx, c)
}
func (m *jobStoreMock) Create(ctx context.Context, job *model.Job) error {
	return m.CreateFn(ctx, job)
}
func (m *jobStoreMock) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	return m.FindByIDFn(ctx, id)
}
func (m *jobStoreMock) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Job, error) {
	return m.ListByCompanyFn(ctx, companyID)
}
func (m *jobStoreMock) Deactivate(ctx context.Context, id uuid.UUID) error {
	return m.DeactivateFn(ctx, id)
}
func (m *jobStoreMock) SetEmbedding(ctx context.Context, id uuid.UUID, emb pgvector.Vector) error {
	return m.SetEmbeddingFn(ctx, id, emb)
}
func (m *jobStoreMock) ListMissingEmbedding(ctx context.Context, limit int) ([]model.Job, error) {
	return m.ListMissingEmbeddingFn(ctx, limit)
}
func (m *jobStoreMock) SearchSimilar(ctx context.Context, exclude uuid.UUID, emb pgvector.Vector, topK int) ([]model.Job, error) {
	return m.SearchSimilarFn(ctx, exclude, emb, topK)
}

type companyFinderMock struct {
	FindByOwnerFn func(ctx context.Context, ownerID uuid.UUID) (*model.Company, error)
}

func (m *companyFinderMock) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Company, error) {
	return m.FindByOwnerFn(ctx, ownerID)
}

func TestSearchDelegatesCriteria(t *testing.T) {
	c, err := search.ParseCriteria("go", "berlin", "full-time", "", "all")
	require.NoError(t, err)

	jobs := &jobStoreMock{
		SearchFn: func(_ context.Context, got search.Criteria) ([]model.Job, error) {
			assert.Equal(t, c, got)
			return []model.Job{{Title: "Backend Engineer"}}, nil
		},
	}

	uc := NewJobUsecase(jobs, &companyFinderMock{}, nil)
	out, err := uc.Search(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Backend Engineer", out[0].Title)
}

func TestCreateJobValidation(t *testing.T) {
	min, max := 90000, 60000
	tests := []struct {
		name  string
		in    CreateJobInput
		field string
	}{
		{"missing title", CreateJobInput{Description: "d", JobType: model.JobTypeFullTime, WorkArrangement: model.WorkRemote, ExperienceLevel: model.ExperienceMid}, "title"},
		{"bad job type", CreateJobInput{Title: "t", Description: "d", JobType: "gig", WorkArrangement: model.WorkRemote, ExperienceLevel: model.ExperienceMid}, "job_type"},
		{"salary range inverted", CreateJobInput{Title: "t", Description: "d", JobType: model.JobTypeFullTime, WorkArrangement: model.WorkRemote, ExperienceLevel: model.ExperienceMid, SalaryMin: &min, SalaryMax: &max}, "salary_max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewJobUsecase(&jobStoreMock{}, &companyFinderMock{}, nil)
			_, err := uc.Create(context.Background(), uuid.New(), tt.in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestCreateJobRequiresCompany(t *testing.T) {
	companies := &companyFinderMock{
		FindByOwnerFn: func(_ context.Context, _ uuid.UUID) (*model.Company, error) {
			return nil, repository.ErrNotFound
		},
	}
	uc := NewJobUsecase(&jobStoreMock{}, companies, nil)

	_, err := uc.Create(context.Background(), uuid.New(), CreateJobInput{
		Title: "t", Description: "d",
		JobType: model.JobTypeFullTime, WorkArrangement: model.WorkRemote, ExperienceLevel: model.ExperienceMid,
	})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestCreateJobPublishesActivePosting(t *testing.T) {
	owner := uuid.New()
	company := &model.Company{ID: uuid.New(), OwnerID: owner}

	var created *model.Job
	jobs := &jobStoreMock{
		CreateFn: func(_ context.Context, job *model.Job) error {
			created = job
			return nil
		},
	}
	companies := &companyFinderMock{
		FindByOwnerFn: func(_ context.Context, _ uuid.UUID) (*model.Company, error) { return company, nil },
	}

	uc := NewJobUsecase(jobs, companies, nil)
	job, err := uc.Create(context.Background(), owner, CreateJobInput{
		Title: "Backend Engineer", Description: "Go and Postgres",
		JobType: model.JobTypeFullTime, WorkArrangement: model.WorkRemote, ExperienceLevel: model.ExperienceMid,
	})
	require.NoError(t, err)

	assert.True(t, job.IsActive)
	assert.Equal(t, company.ID, job.CompanyID)
	assert.Equal(t, "USD", job.SalaryCurrency)
	assert.Same(t, created, job)
}

func TestDeactivateChecksOwnership(t *testing.T) {
	owner := uuid.New()
	job := activeJob(owner)

	deactivated := false
	jobs := &jobStoreMock{
		FindByIDFn: func(_ context.Context, _ uuid.UUID) (*model.Job, error) { return job, nil },
		DeactivateFn: func(_ context.Context, id uuid.UUID) error {
			deactivated = true
			return nil
		},
	}

	uc := NewJobUsecase(jobs, &companyFinderMock{}, nil)

	err := uc.Deactivate(context.Background(), uuid.New(), job.ID)
	assert.ErrorIs(t, err, ErrNotJobOwner)
	assert.False(t, deactivated)

	err = uc.Deactivate(context.Background(), owner, job.ID)
	require.NoError(t, err)
	assert.True(t, deactivated)
}

func TestSimilarWithoutEmbeddingReturnsNothing(t *testing.T) {
	job := activeJob(uuid.New())
	jobs := &jobStoreMock{
		FindByIDFn: func(_ context.Context, _ uuid.UUID) (*model.Job, error) { return job, nil },
		SearchSimilarFn: func(_ context.Context, _ uuid.UUID, _ pgvector.Vector, _ int) ([]model.Job, error) {
			t.Fatal("similarity query must be skipped without a vector")
			return nil, nil
		},
	}

	uc := NewJobUsecase(jobs, &companyFinderMock{}, nil)
	out, err := uc.Similar(context.Background(), job.ID, 5)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestStatsForCompany(t *testing.T) {
	companyID := uuid.New()
	jobs := &jobStoreMock{
		ListByCompanyFn: func(_ context.Context, id uuid.UUID) ([]model.Job, error) {
			assert.Equal(t, companyID, id)
			return []model.Job{
				{IsActive: true, Applications: []model.Application{{}, {}}},
				{IsActive: false, Applications: []model.Application{{}}},
			}, nil
		},
	}

	uc := NewJobUsecase(jobs, &companyFinderMock{}, nil)
	counts, err := uc.StatsForCompany(context.Background(), companyID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.ActiveJobs)
	assert.Equal(t, 3, counts.TotalApplications)
}
