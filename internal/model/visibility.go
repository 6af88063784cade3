package model

// VisibilityState represents the dock's position in the show/hide cycle
type VisibilityState string

const (
	// StateHidden means the dock is parked off-screen with only a thin sliver visible
	StateHidden VisibilityState = "hidden"

	// StateRevealing means the reveal animation is in progress
	StateRevealing VisibilityState = "revealing"

	// StateShown means the dock is fully visible at its resting position
	StateShown VisibilityState = "shown"

	// StateHiding means the hide animation is in progress
	StateHiding VisibilityState = "hiding"
)

// String returns the string representation of VisibilityState
func (vs VisibilityState) String() string {
	return string(vs)
}

// IsAnimating returns true if the dock is mid-transition
func (vs VisibilityState) IsAnimating() bool {
	return vs == StateRevealing || vs == StateHiding
}

// IsVisible returns true if any part of the dock beyond the sliver is on screen
func (vs VisibilityState) IsVisible() bool {
	return vs != StateHidden
}
