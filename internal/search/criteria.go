// Package search defines the typed filter set for job queries. Every field
// is optional; set fields combine with logical AND. The HTTP layer's "" and
// "all" sentinels are folded into absence by ParseCriteria so nothing below
// the handler compares magic strings.
package search

import (
	"fmt"
	"strings"

	"github.com/careerconnect/backend/internal/model"
)

// Criteria filters active postings. Keyword and Location are substring
// matches; the enum fields are exact matches and nil means unconstrained.
type Criteria struct {
	Keyword         string
	Location        string
	JobType         *model.JobType
	ExperienceLevel *model.ExperienceLevel
	WorkArrangement *model.WorkArrangement

	// Page and PageSize are optional; zero means no pagination.
	Page     int
	PageSize int
}

// sentinel reports whether a raw filter value means "no constraint".
func sentinel(v string) bool {
	return v == "" || strings.EqualFold(v, "all")
}

// ParseCriteria builds a Criteria from raw query values, rejecting enum
// values outside the catalog.
func ParseCriteria(keyword, location, jobType, experienceLevel, workArrangement string) (Criteria, error) {
	c := Criteria{
		Keyword:  strings.TrimSpace(keyword),
		Location: strings.TrimSpace(location),
	}

	if !sentinel(jobType) {
		jt := model.JobType(jobType)
		if !jt.Valid() {
			return Criteria{}, fmt.Errorf("invalid job type %q", jobType)
		}
		c.JobType = &jt
	}
	if !sentinel(experienceLevel) {
		el := model.ExperienceLevel(experienceLevel)
		if !el.Valid() {
			return Criteria{}, fmt.Errorf("invalid experience level %q", experienceLevel)
		}
		c.ExperienceLevel = &el
	}
	if !sentinel(workArrangement) {
		wa := model.WorkArrangement(workArrangement)
		if !wa.Valid() {
			return Criteria{}, fmt.Errorf("invalid work arrangement %q", workArrangement)
		}
		c.WorkArrangement = &wa
	}

	return c, nil
}

// Empty reports whether no filter is set at all.
func (c Criteria) Empty() bool {
	return c.Keyword == "" && c.Location == "" &&
		c.JobType == nil && c.ExperienceLevel == nil && c.WorkArrangement == nil
}
