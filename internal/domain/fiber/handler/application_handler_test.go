package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/repository"
	"github.com/careerconnect/backend/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type appStoreStub struct {
	createFn       func(ctx context.Context, app *model.Application) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*model.Application, error)
	existsFn       func(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, from, to model.Status) (int64, error)
}

func (s *appStoreStub) Create(ctx context.Context, app *model.Application) error {
	return s.createFn(ctx, app)
}

func (s *appStoreStub) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	return s.findByIDFn(ctx, id)
}

func (s *appStoreStub) Exists(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	return s.existsFn(ctx, jobID, applicantID)
}

func (s *appStoreStub) ListByApplicant(ctx context.Context, applicantID uuid.UUID, status *model.Status) ([]model.Application, error) {
	return nil, nil
}

func (s *appStoreStub) ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error) {
	return nil, nil
}

func (s *appStoreStub) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.Status) (int64, error) {
	return s.updateStatusFn(ctx, id, from, to)
}

type jobFinderStub struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*model.Job, error)
}

func (s *jobFinderStub) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	return s.findByIDFn(ctx, id)
}

func newTestApp(store usecase.ApplicationStore, jobs usecase.JobFinder) *fiber.App {
	app := fiber.New()
	NewApplicationHandler(usecase.NewApplicationUsecase(store, jobs, nil)).RegisterRoutes(app)
	return app
}

func jsonRequest(method, target string, account uuid.UUID, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if account != uuid.Nil {
		req.Header.Set(HeaderAccountID, account.String())
	}
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestSubmitCreatesApplication(t *testing.T) {
	jobID := uuid.New()
	owner := uuid.New()
	applicant := uuid.New()

	jobs := &jobFinderStub{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*model.Job, error) {
			return &model.Job{
				ID:       id,
				Company:  model.Company{OwnerID: owner},
				IsActive: true,
			}, nil
		},
	}
	store := &appStoreStub{
		createFn: func(_ context.Context, app *model.Application) error {
			assert.Equal(t, model.StatusPending, app.Status)
			assert.Equal(t, applicant, app.ApplicantID)
			return nil
		},
	}

	app := newTestApp(store, jobs)
	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/jobs/"+jobID.String()+"/apply", applicant, fiber.Map{
		"cover_letter": "Interested in this role.",
	}))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := readBody(t, resp)
	assert.True(t, gjson.Get(body, "success").Bool())
	assert.Equal(t, "pending", gjson.Get(body, "data.status").String())
}

func TestSubmitDuplicateConflicts(t *testing.T) {
	jobID := uuid.New()

	jobs := &jobFinderStub{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*model.Job, error) {
			return &model.Job{ID: id, IsActive: true}, nil
		},
	}
	store := &appStoreStub{
		createFn: func(_ context.Context, _ *model.Application) error {
			return repository.ErrDuplicateApplication
		},
	}

	app := newTestApp(store, jobs)
	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/jobs/"+jobID.String()+"/apply", uuid.New(), nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestSubmitInactiveJobRejected(t *testing.T) {
	jobID := uuid.New()

	jobs := &jobFinderStub{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*model.Job, error) {
			return &model.Job{ID: id, IsActive: false}, nil
		},
	}
	store := &appStoreStub{
		createFn: func(_ context.Context, _ *model.Application) error {
			t.Fatal("create should not be reached for an inactive job")
			return nil
		},
	}

	app := newTestApp(store, jobs)
	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/jobs/"+jobID.String()+"/apply", uuid.New(), nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSubmitRequiresAccountHeader(t *testing.T) {
	app := newTestApp(&appStoreStub{}, &jobFinderStub{})
	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/jobs/"+uuid.NewString()+"/apply", uuid.Nil, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTransitionByOwner(t *testing.T) {
	owner := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()

	jobs := &jobFinderStub{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*model.Job, error) {
			return &model.Job{ID: id, Company: model.Company{OwnerID: owner}, IsActive: true}, nil
		},
	}
	store := &appStoreStub{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*model.Application, error) {
			return &model.Application{ID: id, JobID: jobID, Status: model.StatusPending}, nil
		},
		updateStatusFn: func(_ context.Context, _ uuid.UUID, from, to model.Status) (int64, error) {
			assert.Equal(t, model.StatusPending, from)
			assert.Equal(t, model.StatusReviewing, to)
			return 1, nil
		},
	}

	app := newTestApp(store, jobs)
	resp, err := app.Test(jsonRequest(fiber.MethodPatch, "/applications/"+appID.String()+"/status", owner, fiber.Map{
		"status": "reviewing",
	}))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Equal(t, "reviewing", gjson.Get(body, "data.status").String())
}

func TestTransitionByStrangerForbidden(t *testing.T) {
	appID := uuid.New()
	jobID := uuid.New()

	jobs := &jobFinderStub{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*model.Job, error) {
			return &model.Job{ID: id, Company: model.Company{OwnerID: uuid.New()}}, nil
		},
	}
	store := &appStoreStub{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*model.Application, error) {
			return &model.Application{ID: id, JobID: jobID, Status: model.StatusPending}, nil
		},
	}

	app := newTestApp(store, jobs)
	resp, err := app.Test(jsonRequest(fiber.MethodPatch, "/applications/"+appID.String()+"/status", uuid.New(), fiber.Map{
		"status": "reviewing",
	}))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestTransitionInvalidEdgeUnprocessable(t *testing.T) {
	owner := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()

	jobs := &jobFinderStub{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*model.Job, error) {
			return &model.Job{ID: id, Company: model.Company{OwnerID: owner}}, nil
		},
	}
	store := &appStoreStub{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*model.Application, error) {
			return &model.Application{ID: id, JobID: jobID, Status: model.StatusAccepted}, nil
		},
	}

	app := newTestApp(store, jobs)
	resp, err := app.Test(jsonRequest(fiber.MethodPatch, "/applications/"+appID.String()+"/status", owner, fiber.Map{
		"status": "rejected",
	}))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHasApplied(t *testing.T) {
	jobID := uuid.New()
	store := &appStoreStub{
		existsFn: func(_ context.Context, _, _ uuid.UUID) (bool, error) {
			return true, nil
		},
	}

	app := newTestApp(store, &jobFinderStub{})
	resp, err := app.Test(jsonRequest(fiber.MethodGet, "/jobs/"+jobID.String()+"/applied", uuid.New(), nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, gjson.Get(readBody(t, resp), "data.applied").Bool())
}
