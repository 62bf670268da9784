package exceptions

import (
	"fmt"
	"sort"
	"strings"
	"wav-intake-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		switch firstErr.Tag() {
		case "required":
			return fieldName + " is required"
		case "email":
			return fieldName + " must be a valid email address"
		default:
			return fieldName + " is invalid"
		}
	}
	return constvars.ErrClientCannotProcessRequest
}

// FormatRemoteFieldErrors flattens the remote validation payload
// (field name → list of messages) into a single line, e.g.
// "dob: invalid date | zip: required".
func FormatRemoteFieldErrors(errors map[string]interface{}) string {
	if len(errors) == 0 {
		return ""
	}

	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		messages, ok := errors[field].([]interface{})
		if !ok {
			continue
		}
		rendered := make([]string, 0, len(messages))
		for _, message := range messages {
			rendered = append(rendered, fmt.Sprintf("%v", message))
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(rendered, "; ")))
	}
	return strings.Join(parts, " | ")
}
