package models

import (
	"errors"
	"fmt"
)

// ErrConfirmationRequired is returned by deletes that were not explicitly confirmed.
var ErrConfirmationRequired = errors.New("delete must be confirmed")

// ValidationError is returned when a form fails a client-side rule.
// No request is sent to the backend when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func required(field string) error {
	return invalid(field, field+" is required")
}
