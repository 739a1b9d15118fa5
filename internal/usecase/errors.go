package usecase

import (
	"errors"

	"media-review/pkg/utils"
)

var (
	// ErrNotFound maps to 404.
	ErrNotFound = errors.New("not found")
	// ErrForbidden maps to 403.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries field-level messages and maps to 400. Constraint
// violations (duplicate review, duplicate username, duplicate email) are
// recovered into this type rather than surfacing a storage error.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// AsValidationError unwraps err into a *ValidationError if possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
