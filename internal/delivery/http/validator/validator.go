// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "farmgrid/internal/domain/errors"
)

// CustomValidator wraps a validator.Validate instance.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the Echo validator used by all handlers.
func New() echo.Validator {
	return &CustomValidator{
		validate: playground.New(),
	}
}

// Validate checks struct tags and converts failures to a domain error.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
