package config

import "fmt"

// ReadError reports a config document that could not be read or decoded.
// The load path recovers by falling back to defaults and writing them out,
// so a ReadError is logged rather than surfaced.
type ReadError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *ReadError) Error() string {
	return fmt.Sprintf("read config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError reports a failed save. The in-memory state the save belonged
// to is left unchanged, so the caller can surface the failure and keep
// running on the previous configuration.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	return fmt.Sprintf("write config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *WriteError) Unwrap() error {
	return e.Err
}
