package model

import "github.com/google/uuid"

// Skill is a canonical catalog entry. Postings and profiles reference
// skills, they never own them.
type Skill struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"not null;uniqueIndex" json:"name"`
	Category string    `json:"category"`
}

func (s *Skill) TableName() string {
	return "skills"
}
