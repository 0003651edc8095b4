// Package command turns untyped request input into validated, typed
// commands. Each Parse function collects every applicable field error
// instead of failing on the first.
package command

import "strings"

// Error kinds attached to field errors.
const (
	KindRequired      = "required"
	KindInvalidFormat = "invalid_format"
	KindTooShort      = "too_short"
	KindTooLong       = "too_long"
	KindMismatch      = "mismatch"
	KindOutOfRange    = "out_of_range"
)

// FieldError is one validation failure, keyed by field path.
type FieldError struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors is the ordered list of failures a schema produced.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	messages := make([]string, len(e))
	for i, fieldErr := range e {
		messages[i] = fieldErr.Error()
	}
	return strings.Join(messages, "; ")
}

func (e *FieldErrors) add(field, kind, message string) {
	*e = append(*e, FieldError{Field: field, Kind: kind, Message: message})
}
