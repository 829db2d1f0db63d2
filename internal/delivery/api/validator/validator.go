// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	domainerrors "firelink/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates request DTOs by their struct tags.
type Validator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures become ErrValidationFailed listing the offending fields.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field()+" "+fe.Tag())
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, ", ")))
}
