package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to reviewing", StatusPending, StatusReviewing, true},
		{"pending to interview", StatusPending, StatusInterview, true},
		{"pending skips straight to accepted", StatusPending, StatusAccepted, true},
		{"pending skips straight to rejected", StatusPending, StatusRejected, true},
		{"reviewing to interview", StatusReviewing, StatusInterview, true},
		{"reviewing to accepted", StatusReviewing, StatusAccepted, true},
		{"reviewing to rejected", StatusReviewing, StatusRejected, true},
		{"interview to accepted", StatusInterview, StatusAccepted, true},
		{"interview to rejected", StatusInterview, StatusRejected, true},
		{"no self loop", StatusPending, StatusPending, false},
		{"no going back to pending", StatusReviewing, StatusPending, false},
		{"interview cannot return to reviewing", StatusInterview, StatusReviewing, false},
		{"accepted is terminal", StatusAccepted, StatusPending, false},
		{"accepted cannot flip to rejected", StatusAccepted, StatusRejected, false},
		{"rejected is terminal", StatusRejected, StatusReviewing, false},
		{"rejected cannot flip to accepted", StatusRejected, StatusAccepted, false},
		{"unknown target", StatusPending, Status("archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusAccepted.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusReviewing.Terminal())
	assert.False(t, StatusInterview.Terminal())
}

func TestTerminalStatusesHaveNoEdges(t *testing.T) {
	for _, s := range []Status{StatusAccepted, StatusRejected} {
		for _, next := range []Status{StatusPending, StatusReviewing, StatusInterview, StatusAccepted, StatusRejected} {
			assert.False(t, s.CanTransitionTo(next), "%s -> %s must be rejected", s, next)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusReviewing, StatusInterview, StatusAccepted, StatusRejected} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("").Valid())
	assert.False(t, Status("all").Valid())
	assert.False(t, Status("withdrawn").Valid())
}
