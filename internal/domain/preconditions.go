package domain

import (
	"fmt"
	"strings"

	"bogenliga/internal/core/apperror"
)

// RequireNonNegative fails with a validation error when v < 0.
func RequireNonNegative(field string, v int64) error {
	if v < 0 {
		return apperror.NewValidation(fmt.Sprintf("%s must not be negative", field)).
			WithDetail("field", field).
			WithDetail("value", v)
	}
	return nil
}

// RequirePositive fails with a validation error when v <= 0.
func RequirePositive(field string, v int64) error {
	if v <= 0 {
		return apperror.NewValidation(fmt.Sprintf("%s must be positive", field)).
			WithDetail("field", field).
			WithDetail("value", v)
	}
	return nil
}

// RequireNotBlank fails with a validation error for empty or whitespace-only strings.
func RequireNotBlank(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return apperror.NewValidation(fmt.Sprintf("%s must not be empty", field)).
			WithDetail("field", field)
	}
	return nil
}

// RequireRange fails when v is outside [min, max].
func RequireRange(field string, v, min, max int64) error {
	if v < min || v > max {
		return apperror.NewValidation(fmt.Sprintf("%s must be between %d and %d", field, min, max)).
			WithDetail("field", field).
			WithDetail("value", v)
	}
	return nil
}

// FirstError returns the first non-nil error.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
