package autohide

import (
	"github.com/shydock/shydock/internal/model"
)

// CursorSource supplies the global cursor position, sampled once per tick.
// Implementations report failures instead of guessing; the controller holds
// its state and retries on the next tick.
type CursorSource interface {
	Position() (model.Point, error)
}

// CursorFunc adapts a plain function to the CursorSource interface
type CursorFunc func() (model.Point, error)

// Position implements CursorSource
func (f CursorFunc) Position() (model.Point, error) {
	return f()
}
