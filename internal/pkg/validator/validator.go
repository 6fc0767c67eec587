// Package validator wraps go-playground/validator with a package-level
// instance and a uniform error format.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed heads the joined error returned when any rule fails.
var ErrValidationFailed = errors.New("validation failed")

var validator *gvalidator.Validate

// errStringFormat renders one field failure, e.g.
// "'WalletAddress': value '0x' does not meet the requirements for the 'eth_addr' validation".
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError joins ErrValidationFailed with one message per field error.
// Errors that are not validation errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		field := validationErr.Field()
		if field == "" {
			field = "value"
		}

		errs = append(errs, fmt.Errorf(errStringFormat, field, validationErr.Value(), validationErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var(addr, "required,eth_addr").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
