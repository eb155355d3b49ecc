package domain

import (
	"github.com/go-playground/validator/v10"

	"portfolio-admin/internal/slug"
)

// NewValidator returns a validator with the custom rules the domain
// types rely on. Each component constructs its own instance.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.IsValid(fl.Field().String())
	})
	return v
}
