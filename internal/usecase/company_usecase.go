package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/careerconnect/backend/internal/model"
	"github.com/careerconnect/backend/internal/repository"
	"github.com/google/uuid"
)

type CompanyStore interface {
	CompanyFinder
	Create(ctx context.Context, company *model.Company) error
	Update(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
}

type CompanyUsecase struct {
	companies CompanyStore
	now       func() time.Time
}

func NewCompanyUsecase(companies CompanyStore) *CompanyUsecase {
	return &CompanyUsecase{companies: companies, now: time.Now}
}

type CompanyInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Industry    string            `json:"industry"`
	Size        model.CompanySize `json:"size"`
	Location    string            `json:"location"`
	Website     string            `json:"website"`
	LogoURL     string            `json:"logo_url"`
	FoundedYear int               `json:"founded_year"`
}

func (in *CompanyInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name is required"
	}
	if in.Size != "" && !in.Size.Valid() {
		fields["size"] = "unknown company size"
	}
	if in.FoundedYear != 0 && (in.FoundedYear < 1800 || in.FoundedYear > time.Now().Year()) {
		fields["founded_year"] = "founded year is out of range"
	}
	if len(fields) > 0 {
		return newValidationError(fields)
	}
	return nil
}

// Create registers the actor's company. One company per owner account; the
// unique index on owner_id backs that.
func (uc *CompanyUsecase) Create(ctx context.Context, ownerID uuid.UUID, in CompanyInput) (*model.Company, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	company := &model.Company{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Industry:    in.Industry,
		Size:        in.Size,
		Location:    strings.TrimSpace(in.Location),
		Website:     strings.TrimSpace(in.Website),
		LogoURL:     strings.TrimSpace(in.LogoURL),
		FoundedYear: in.FoundedYear,
		CreatedAt:   uc.now(),
		UpdatedAt:   uc.now(),
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		if errors.Is(err, repository.ErrDuplicateCompany) {
			return nil, ErrCompanyExists
		}
		return nil, storeErr(err)
	}
	return company, nil
}

func (uc *CompanyUsecase) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := uc.companies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, storeErr(err)
	}
	return company, nil
}

func (uc *CompanyUsecase) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Company, error) {
	company, err := uc.companies.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, storeErr(err)
	}
	return company, nil
}

func (uc *CompanyUsecase) List(ctx context.Context) ([]model.Company, error) {
	companies, err := uc.companies.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return companies, nil
}

// Update changes descriptive fields only. Identity and ownership are
// immutable once created, and verification is an admin concern.
func (uc *CompanyUsecase) Update(ctx context.Context, ownerID, companyID uuid.UUID, in CompanyInput) (*model.Company, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	company, err := uc.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.OwnerID != ownerID {
		return nil, ErrNotJobOwner
	}

	company.Name = strings.TrimSpace(in.Name)
	company.Description = strings.TrimSpace(in.Description)
	company.Industry = in.Industry
	company.Size = in.Size
	company.Location = strings.TrimSpace(in.Location)
	company.Website = strings.TrimSpace(in.Website)
	company.LogoURL = strings.TrimSpace(in.LogoURL)
	company.FoundedYear = in.FoundedYear
	company.UpdatedAt = uc.now()

	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, storeErr(err)
	}
	return company, nil
}
