// Package validator adapts go-playground/validator to echo's Validator
// interface, turning tag violations into the 422 validation error shape.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "institute/internal/domain/errors"
	"institute/internal/errors"
)

// Validator wraps a configured validator instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New creates the request validator used by all handlers.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks struct tags and maps violations to a validation error
// carrying per-field details.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return errors.Wrap(err, "request validation")
	}

	fields := make([]domainerrors.FieldError, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, domainerrors.FieldError{
			Field:   strings.ToLower(violation.Field()[:1]) + violation.Field()[1:],
			Message: describe(violation),
		})
	}

	return domainerrors.NewValidationError(fields)
}

func describe(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", violation.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", violation.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(violation.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed on the '%s' rule", violation.Tag())
	}
}
