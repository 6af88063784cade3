package launch

import "fmt"

// LaunchError reports an action that could not be started. The dock surfaces
// it as an ephemeral notification; there is no retry.
type LaunchError struct {
	Action string
	Err    error
}

// Error implements the error interface
func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %q: %v", e.Action, e.Err)
}

// Unwrap returns the underlying error
func (e *LaunchError) Unwrap() error {
	return e.Err
}
