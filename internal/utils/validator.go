package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DescribeBindingError turns a gin binding failure into a short log-friendly
// reason such as "username required, body required".
func DescribeBindingError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "malformed request body"
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		parts = append(parts, jsonFieldName(fe)+" "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}

func jsonFieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "IncVotes":
		return "inc_votes"
	default:
		return strings.ToLower(fe.Field())
	}
}
