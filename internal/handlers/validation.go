package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
)

// ValidationError describes one rejected request field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UseJSONFieldNames makes binding errors report json tag names (mentorId)
// instead of Go field names (MentorID). Call once before serving.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
}

// ParseValidationErrors converts binding and service field errors into
// the details list returned to clients
func ParseValidationErrors(err error) []ValidationError {
	if fieldErr, ok := apperrors.AsFieldError(err); ok {
		return []ValidationError{{Field: fieldErr.Field, Message: fieldErr.Reason}}
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	result := make([]ValidationError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		result = append(result, ValidationError{
			Field:   fieldError.Field(),
			Message: validationMessage(fieldError),
		})
	}
	return result
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must not exceed " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "uuid":
		return "must be a valid id"
	case "hexcolor":
		return "must be a hex colour like #3B82F6"
	case "url":
		return "must be a valid URL"
	case "dive":
		return "contains an invalid value"
	default:
		return "is invalid"
	}
}
