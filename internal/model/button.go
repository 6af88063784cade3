package model

import "strings"

// ButtonDescriptor describes one launcher button on the dock. Order within
// the button list determines on-screen placement.
type ButtonDescriptor struct {
	Name   string `json:"name"`   // shown as tooltip, required
	Icon   string `json:"icon"`   // icon file path, optional; placeholder shown when unreadable
	Action string `json:"action"` // shell command, handed to the launcher verbatim
}

// Validate reports whether the descriptor can be stored
func (b ButtonDescriptor) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return nil
}

// MoveButton returns a copy of buttons with the element at from re-inserted
// so it ends up at index to, shifting the elements between the two positions
// by one. Moving an element onto its own index is a no-op copy.
func MoveButton(buttons []ButtonDescriptor, from, to int) ([]ButtonDescriptor, error) {
	if from < 0 || from >= len(buttons) {
		return nil, &IndexError{Op: "move", Index: from, Len: len(buttons)}
	}
	if to < 0 || to >= len(buttons) {
		return nil, &IndexError{Op: "move", Index: to, Len: len(buttons)}
	}
	out := make([]ButtonDescriptor, len(buttons))
	copy(out, buttons)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out, ButtonDescriptor{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out, nil
}
