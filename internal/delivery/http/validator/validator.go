// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "dashmonkey/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the Echo validator used by every request DTO carrying validate tags.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate runs struct validation and folds failures into the malformed-request kind.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrMalformedRequest.WithDetails(err.Error())
	}

	return nil
}
