package board

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by mutations targeting an unknown id. The original
// store treated these as silent no-ops; callers that want that behavior can
// ignore the error, but it is always observable.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed input: a missing required field or a
// reference to a non-existent owning entity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
