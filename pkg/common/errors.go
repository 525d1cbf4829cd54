package common

import (
	"fmt"
)

// NotFoundError is returned when the required value is not found.
type NotFoundError struct {
	Message string
}

func (nf NotFoundError) Error() string {
	return nf.Message
}

// NewNotFoundError creates a new instance of NotFoundError with the given message.
func NewNotFoundError(message string) NotFoundError {
	return NotFoundError{
		Message: message,
	}
}

// ParseError is returned when a property value cannot be parsed into its typed form.
// A malformed value indicates a broken upstream configuration contract, so callers
// must surface it instead of falling back to a default.
type ParseError struct {
	Property string
	Value    string
	Cause    error
}

func (pe ParseError) Error() string {
	if pe.Cause != nil {
		return fmt.Sprintf("invalid value %q for property %s: %s", pe.Value, pe.Property, pe.Cause)
	}
	return fmt.Sprintf("invalid value %q for property %s", pe.Value, pe.Property)
}

func (pe ParseError) Unwrap() error {
	return pe.Cause
}

// NewParseError creates a new instance of ParseError for the given property and raw value.
func NewParseError(property, value string, cause error) ParseError {
	return ParseError{
		Property: property,
		Value:    value,
		Cause:    cause,
	}
}
