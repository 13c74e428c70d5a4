package usecase

import (
	"errors"
	"fmt"
)

// Domain rule violations are expected, recoverable outcomes; callers turn
// them into user-facing messages and never retry them. ErrStoreUnavailable
// wraps collaborator I/O failures and is the only kind worth retrying.
var (
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrJobNotFound         = errors.New("job not found")
	ErrJobInactive         = errors.New("job is no longer accepting applications")
	ErrInvalidTransition   = errors.New("invalid application status transition")
	ErrApplicationNotFound = errors.New("application not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrCompanyExists       = errors.New("account already owns a company")
	ErrNotJobOwner         = errors.New("account does not own this job posting")
	ErrStoreUnavailable    = errors.New("store unavailable")
)

// ValidationError carries per-field messages for malformed input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
