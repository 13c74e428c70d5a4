package dto

import (
	"time"

	"github.com/careerconnect/backend/internal/model"
	"github.com/google/uuid"
)

type CompanyDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Size        string    `json:"size"`
	Location    string    `json:"location"`
	Website     string    `json:"website"`
	LogoURL     string    `json:"logo_url"`
	FoundedYear int       `json:"founded_year,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCompanyDTO(c *model.Company) CompanyDTO {
	return CompanyDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Industry:    c.Industry,
		Size:        string(c.Size),
		Location:    c.Location,
		Website:     c.Website,
		LogoURL:     c.LogoURL,
		FoundedYear: c.FoundedYear,
		IsVerified:  c.IsVerified,
		CreatedAt:   c.CreatedAt,
	}
}

func NewCompanyDTOs(companies []model.Company) []CompanyDTO {
	out := make([]CompanyDTO, 0, len(companies))
	for i := range companies {
		out = append(out, NewCompanyDTO(&companies[i]))
	}
	return out
}
