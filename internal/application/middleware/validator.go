package middleware

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type structValidator struct {
	validate *validator.Validate
}

func (v *structValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// SetupValidator registers the struct validator used by c.Validate in handlers.
func SetupValidator(e *echo.Echo) {
	e.Validator = &structValidator{validate: validator.New()}
}
