package platform

import "fmt"

// QueryError reports a failed cursor or screen query. Callers decide policy:
// the auto-hide controller holds its state and retries next tick, startup
// falls back to a default screen size.
type QueryError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *QueryError) Unwrap() error {
	return e.Err
}
