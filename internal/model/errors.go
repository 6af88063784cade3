package model

import "fmt"

// ValidationError reports a settings or button field that failed validation.
// The Field name matches the JSON key so the UI can flag the matching input.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IndexError reports a button operation addressed at an out-of-range index
type IndexError struct {
	Op    string
	Index int
	Len   int
}

// Error implements the error interface
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}
