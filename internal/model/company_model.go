package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanySize buckets match the values the signup flow offers.
type CompanySize string

const (
	CompanySize1To10     CompanySize = "1-10"
	CompanySize11To50    CompanySize = "11-50"
	CompanySize51To200   CompanySize = "51-200"
	CompanySize201To500  CompanySize = "201-500"
	CompanySize501To1000 CompanySize = "501-1000"
	CompanySizeOver1000  CompanySize = "1000+"
)

func (s CompanySize) Valid() bool {
	switch s {
	case CompanySize1To10, CompanySize11To50, CompanySize51To200,
		CompanySize201To500, CompanySize501To1000, CompanySizeOver1000:
		return true
	}
	return false
}

type Company struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex" json:"owner_id"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Industry    string      `json:"industry"`
	Size        CompanySize `gorm:"type:varchar(20)" json:"size"`
	Location    string      `json:"location"`
	Website     string      `json:"website"`
	LogoURL     string      `json:"logo_url"`
	FoundedYear int         `json:"founded_year"`
	IsVerified  bool        `gorm:"default:false" json:"is_verified"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Jobs []Job `json:"jobs,omitempty"`
}

func (c *Company) TableName() string {
	return "companies"
}
