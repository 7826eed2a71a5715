// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound inputs.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/errors"
)

type structValidator struct {
	validate *validator.Validate
}

// New builds the echo validator backed by struct tag rules.
func New() *structValidator {
	return &structValidator{validate: validator.New()}
}

// Validate checks struct tag rules and maps any violation onto the
// request-level validation error. The field detail stays internal.
func (v *structValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return nil
}
