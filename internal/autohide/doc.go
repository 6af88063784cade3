package autohide

// Package autohide implements the dock's show/hide state machine. A
// fixed-interval tick samples the global cursor position, compares it
// against the edge trigger zone and the dock rectangle, and advances the
// reveal/hide animation. Ticks are the only place time passes, so the
// machine stays deterministic under test.
