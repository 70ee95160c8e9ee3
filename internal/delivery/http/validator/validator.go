// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"strings"

	domainerrors "evently/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// requestValidator wraps a validator instance for echo.
type requestValidator struct {
	validate *validator.Validate
}

// New creates an echo-compatible request validator.
func New() *requestValidator {
	return &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the bound request struct and converts field errors into a
// single 400 application error listing the offending fields.
func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fe.Field()+" failed on '"+fe.Tag()+"'")
	}

	return domainerrors.ErrValidationFailed.WrapMessage(strings.Join(problems, "; "))
}
