package repository

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateApplication is returned when the unique index over
	// (job_id, applicant_id) rejects an insert.
	ErrDuplicateApplication = errors.New("application already exists for this job and applicant")
	// ErrDuplicateCompany is returned when the owner already registered a
	// company.
	ErrDuplicateCompany = errors.New("company already exists for this owner")
)
