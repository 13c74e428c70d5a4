package search

import (
	"testing"

	"github.com/careerconnect/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriteriaSentinels(t *testing.T) {
	tests := []struct {
		name string
		raw  [5]string // keyword, location, jobType, experienceLevel, workArrangement
	}{
		{"all empty", [5]string{"", "", "", "", ""}},
		{"all sentinel word", [5]string{"", "", "all", "all", "all"}},
		{"sentinel is case-insensitive", [5]string{"", "", "All", "ALL", "all"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCriteria(tt.raw[0], tt.raw[1], tt.raw[2], tt.raw[3], tt.raw[4])
			require.NoError(t, err)
			assert.True(t, c.Empty())
		})
	}
}

func TestParseCriteriaFilters(t *testing.T) {
	c, err := ParseCriteria("engineer", "Remote", "full-time", "mid", "remote")
	require.NoError(t, err)

	assert.Equal(t, "engineer", c.Keyword)
	assert.Equal(t, "Remote", c.Location)
	require.NotNil(t, c.JobType)
	assert.Equal(t, model.JobTypeFullTime, *c.JobType)
	require.NotNil(t, c.ExperienceLevel)
	assert.Equal(t, model.ExperienceMid, *c.ExperienceLevel)
	require.NotNil(t, c.WorkArrangement)
	assert.Equal(t, model.WorkRemote, *c.WorkArrangement)
	assert.False(t, c.Empty())
}

func TestParseCriteriaRejectsUnknownEnums(t *testing.T) {
	_, err := ParseCriteria("", "", "gig", "", "")
	assert.Error(t, err)

	_, err = ParseCriteria("", "", "", "junior", "")
	assert.Error(t, err)

	_, err = ParseCriteria("", "", "", "", "office")
	assert.Error(t, err)
}

func TestParseCriteriaTrimsText(t *testing.T) {
	c, err := ParseCriteria("  golang  ", "  Berlin ", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "golang", c.Keyword)
	assert.Equal(t, "Berlin", c.Location)
}
