// Package validation checks request payloads against the rules declared in
// their validator struct tags and converts failures into field-level API
// errors the client can act on.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/openblog/backend/errs"
)

var validate = validator.New()

// Struct runs tag-based validation on payload and returns a 400 ApiErr
// describing the first failing field, or nil when the payload is valid.
func Struct(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errs.NewBadRequestError(err.Error())
	}

	fieldErr := validationErrors[0]
	field := strings.ToLower(fieldErr.Field())

	if fieldErr.Tag() == "required" {
		return errs.NewMissingRequiredFieldError(field)
	}
	return errs.NewInvalidFieldError(field, messageFor(fieldErr))
}

// messageFor converts a validator failure into a user-friendly message.
func messageFor(err validator.FieldError) string {
	switch err.Tag() {
	case "min":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	default:
		if err.Param() != "" {
			return fmt.Sprintf("failed %s:%s", err.Tag(), err.Param())
		}
		return fmt.Sprintf("failed %s", err.Tag())
	}
}
