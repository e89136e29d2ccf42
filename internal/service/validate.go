package service

import (
	"errors"
	"reflect"
	"strings"

	"clinic-cms/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput checks req against its validate tags and converts the first
// failure into a validation DomainError.
func validateInput(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return model.NewValidationError("invalid request: %v", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return model.NewValidationError("%s is required", fe.Field())
	case "email":
		return model.NewValidationError("%s must be a valid email address", fe.Field())
	case "oneof":
		return model.NewValidationError("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return model.NewValidationError("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "max":
		return model.NewValidationError("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return model.NewValidationError("%s is invalid", fe.Field())
	}
}
