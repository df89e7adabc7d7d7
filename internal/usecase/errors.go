package usecase

import (
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/utils"
)

var (
	// ErrNotFound marks an id that does not resolve to a stored record.
	ErrNotFound = repository.ErrNotFound
	// ErrReferenceNotFound marks a show that points at a missing artist or venue.
	ErrReferenceNotFound = repository.ErrReferenceNotFound
)

// ValidationError carries every failing field of a submitted form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func validateRequest(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
