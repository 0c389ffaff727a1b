package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError describes a single constraint violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated constraint of a record. A record
// either validates as a whole or fails with the full list; there is no
// partial acceptance.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validate checks a record against its declared constraints and returns a
// *ValidationError listing every violated field. It is applied both to
// inbound payloads and to rows read back from storage, as a guard against
// schema drift.
func Validate(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return &ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is a required field", fe.Field())
	case "email":
		return fmt.Sprintf("please provide a valid email for %s", fe.Field())
	case "url":
		return fmt.Sprintf("please provide a valid URL for %s", fe.Field())
	case "uuid":
		return fmt.Sprintf("please provide a valid uuid for %s", fe.Field())
	case "min":
		return fmt.Sprintf("please provide a valid %s (min %s characters)", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("please provide a valid %s (max %s characters)", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "eqfield":
		return "passwords do not match"
	default:
		return fmt.Sprintf("%s failed the %s constraint", fe.Field(), fe.Tag())
	}
}
