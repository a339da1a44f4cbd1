package usecase

import (
	"errors"

	"movie-catalog/pkg/utils"
)

// Not-found sentinels. Conflict and referential-integrity errors originate in
// the repository package and are wrapped through with %w.
var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrUserNotFound  = errors.New("user not found")
)

// ValidationError carries per-field messages for the 400 response body.
// It is returned before any repository call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func validateRequest(req any) *ValidationError {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
