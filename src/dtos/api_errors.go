package dtos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ApiErrors is the 400 payload: a flat list of human-readable messages.
// Validation failures contribute one message per field; business-rule
// violations contribute exactly one.
type ApiErrors struct {
	Errors []string `json:"errors"`
}

func NewApiErrors(err error) ApiErrors {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, validationMessage(fieldError))
		}
		return ApiErrors{Errors: messages}
	}
	return ApiErrors{Errors: []string{err.Error()}}
}

func validationMessage(fieldError validator.FieldError) string {
	field := strings.ToLower(fieldError.Field())
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s must not be empty", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
