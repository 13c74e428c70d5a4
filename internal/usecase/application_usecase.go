package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/repository"
	"github.com/careerconnect/backend/internal/service"
	"github.com/careerconnect/backend/internal/stats"
	"github.com/google/uuid"
)

// ApplicationStore is the slice of the persistent store the lifecycle
// manager needs. *repository.ApplicationRepository satisfies it.
type ApplicationStore interface {
	Create(ctx context.Context, app *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	Exists(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID, status *model.Status) ([]model.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.Status) (int64, error)
}

// JobFinder resolves postings for precondition checks.
type JobFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
}

type ApplicationUsecase struct {
	applications ApplicationStore
	jobs         JobFinder
	notifier     service.NotifierServiceInterface
	now          func() time.Time
}

func NewApplicationUsecase(applications ApplicationStore, jobs JobFinder, notifier service.NotifierServiceInterface) *ApplicationUsecase {
	return &ApplicationUsecase{
		applications: applications,
		jobs:         jobs,
		notifier:     notifier,
		now:          time.Now,
	}
}

// Submit creates the one and only application for (applicant, job). The
// duplicate check is not read-then-write: the insert itself carries the
// uniqueness constraint, so two racing submissions resolve to one row and
// one ErrAlreadyApplied.
func (uc *ApplicationUsecase) Submit(ctx context.Context, applicantID, jobID uuid.UUID, coverLetter, resumeURL string) (*model.Application, error) {
	job, err := uc.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, storeErr(err)
	}
	if !job.AcceptsApplications(uc.now()) {
		return nil, ErrJobInactive
	}

	app := &model.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      model.StatusPending,
		CoverLetter: strings.TrimSpace(coverLetter),
		ResumeURL:   strings.TrimSpace(resumeURL),
		AppliedAt:   uc.now(),
		UpdatedAt:   uc.now(),
	}
	if err := uc.applications.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return nil, ErrAlreadyApplied
		}
		return nil, storeErr(err)
	}
	return app, nil
}

// Transition moves an application along the status state machine. The actor
// must own the posting's company, and the edge is re-validated against the
// stored status at write time so a concurrent transition cannot be silently
// overwritten.
func (uc *ApplicationUsecase) Transition(ctx context.Context, actorID, applicationID uuid.UUID, next model.Status) (*model.Application, error) {
	if !next.Valid() {
		return nil, ErrInvalidTransition
	}

	app, err := uc.applications.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, storeErr(err)
	}

	job, err := uc.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, storeErr(err)
	}
	if job.Company.OwnerID != actorID {
		return nil, ErrNotJobOwner
	}

	if !app.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	affected, err := uc.applications.UpdateStatus(ctx, app.ID, app.Status, next)
	if err != nil {
		return nil, storeErr(err)
	}
	if affected == 0 {
		// Lost the race: someone moved the application first. Re-read and
		// report the transition as invalid from the fresh state.
		return nil, ErrInvalidTransition
	}

	app.Status = next
	app.UpdatedAt = uc.now()

	if uc.notifier != nil {
		if err := uc.notifier.NotifyStatusChange(ctx, app); err != nil {
			log.Printf("status change notification failed for application %s: %v", app.ID, err)
		}
	}
	return app, nil
}

// HasApplied is a pure lookup with no side effect.
func (uc *ApplicationUsecase) HasApplied(ctx context.Context, applicantID, jobID uuid.UUID) (bool, error) {
	ok, err := uc.applications.Exists(ctx, jobID, applicantID)
	if err != nil {
		return false, storeErr(err)
	}
	return ok, nil
}

// ListForApplicant returns an applicant's submissions newest first.
// statusFilter follows the search sentinel convention: "" and "all" mean
// unfiltered.
func (uc *ApplicationUsecase) ListForApplicant(ctx context.Context, applicantID uuid.UUID, statusFilter string) ([]model.Application, error) {
	var status *model.Status
	if statusFilter != "" && !strings.EqualFold(statusFilter, "all") {
		s := model.Status(statusFilter)
		if !s.Valid() {
			return nil, newValidationError(map[string]string{"status": "unknown status " + statusFilter})
		}
		status = &s
	}
	apps, err := uc.applications.ListByApplicant(ctx, applicantID, status)
	if err != nil {
		return nil, storeErr(err)
	}
	return apps, nil
}

// ListForJob returns a posting's applicants to its owning company.
func (uc *ApplicationUsecase) ListForJob(ctx context.Context, actorID, jobID uuid.UUID) ([]model.Application, error) {
	job, err := uc.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, storeErr(err)
	}
	if job.Company.OwnerID != actorID {
		return nil, ErrNotJobOwner
	}
	apps, err := uc.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, storeErr(err)
	}
	return apps, nil
}

// StatsForApplicant aggregates the dashboard counters.
func (uc *ApplicationUsecase) StatsForApplicant(ctx context.Context, applicantID uuid.UUID) (stats.ApplicationCounts, error) {
	apps, err := uc.applications.ListByApplicant(ctx, applicantID, nil)
	if err != nil {
		return stats.ApplicationCounts{}, storeErr(err)
	}
	return stats.CountApplications(apps), nil
}
