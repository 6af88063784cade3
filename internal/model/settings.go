package model

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// Edge identifies the screen edge the dock is anchored to
type Edge string

const (
	// EdgeLeft anchors the dock to the left screen edge
	EdgeLeft Edge = "left"

	// EdgeRight anchors the dock to the right screen edge
	EdgeRight Edge = "right"

	// EdgeTop anchors the dock to the top screen edge
	EdgeTop Edge = "top"

	// EdgeBottom anchors the dock to the bottom screen edge
	EdgeBottom Edge = "bottom"
)

// Edges returns all anchor edges in the order the UI presents them
func Edges() []Edge {
	return []Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom}
}

// String returns the string representation of Edge
func (e Edge) String() string {
	return string(e)
}

// Valid returns true if the edge is one of the four screen edges
func (e Edge) Valid() bool {
	switch e {
	case EdgeLeft, EdgeRight, EdgeTop, EdgeBottom:
		return true
	}
	return false
}

// Horizontal returns true if the dock runs along a horizontal edge,
// i.e. buttons are laid out left to right
func (e Edge) Horizontal() bool {
	return e == EdgeTop || e == EdgeBottom
}

// Default values applied when a settings field is missing or out of range
const (
	DefaultPosition     = EdgeLeft
	DefaultOpacity      = 0.4
	DefaultColor        = "#000000"
	DefaultCornerRadius = 16
	DefaultIconSize     = 48
	DefaultSpacing      = 8
	DefaultEdgeOffset   = 10
)

// Settings holds the dock's persisted appearance and layout configuration.
// JSON keys match the settings.json schema; unknown keys are ignored on load.
type Settings struct {
	Position     Edge    `json:"position"`
	Opacity      float64 `json:"opacity"`      // 0.0 (invisible) to 1.0 (opaque)
	Color        string  `json:"color"`        // #RRGGBB or #RRGGBBAA
	CornerRadius float32 `json:"cornerRadius"` // px
	IconSize     float32 `json:"iconSize"`     // px
	Spacing      float32 `json:"spacing"`      // px between buttons and around the edge
	EdgeOffset   int     `json:"edgeOffset"`   // px gap between screen edge and dock
}

// DefaultSettings returns the built-in configuration used on first run
// and as the fallback for unreadable files
func DefaultSettings() Settings {
	return Settings{
		Position:     DefaultPosition,
		Opacity:      DefaultOpacity,
		Color:        DefaultColor,
		CornerRadius: DefaultCornerRadius,
		IconSize:     DefaultIconSize,
		Spacing:      DefaultSpacing,
		EdgeOffset:   DefaultEdgeOffset,
	}
}

// Clamp forces every field into its valid range, substituting defaults for
// values that cannot be repaired by clamping. Used on the load path so a
// hand-edited file never produces an unrenderable dock.
func (s *Settings) Clamp() {
	if !s.Position.Valid() {
		s.Position = DefaultPosition
	}
	if s.Opacity < 0 {
		s.Opacity = 0
	} else if s.Opacity > 1 {
		s.Opacity = 1
	}
	if _, err := ParseHexColor(s.Color); err != nil {
		s.Color = DefaultColor
	}
	if s.CornerRadius < 0 {
		s.CornerRadius = 0
	}
	if s.IconSize <= 0 {
		s.IconSize = DefaultIconSize
	}
	if s.Spacing < 0 {
		s.Spacing = 0
	}
	if s.EdgeOffset < 0 {
		s.EdgeOffset = 0
	}
}

// Validate reports the first out-of-range field. Used on the edit path,
// which rejects bad input instead of silently clamping it.
func (s Settings) Validate() error {
	if !s.Position.Valid() {
		return &ValidationError{Field: "position", Reason: fmt.Sprintf("%q (expected left, right, top or bottom)", string(s.Position))}
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		return &ValidationError{Field: "opacity", Reason: fmt.Sprintf("%.2f (expected 0..1)", s.Opacity)}
	}
	if _, err := ParseHexColor(s.Color); err != nil {
		return err
	}
	if s.CornerRadius < 0 {
		return &ValidationError{Field: "cornerRadius", Reason: fmt.Sprintf("%.1f (expected >= 0)", s.CornerRadius)}
	}
	if s.IconSize <= 0 {
		return &ValidationError{Field: "iconSize", Reason: fmt.Sprintf("%.1f (expected > 0)", s.IconSize)}
	}
	if s.Spacing < 0 {
		return &ValidationError{Field: "spacing", Reason: fmt.Sprintf("%.1f (expected >= 0)", s.Spacing)}
	}
	if s.EdgeOffset < 0 {
		return &ValidationError{Field: "edgeOffset", Reason: fmt.Sprintf("%d (expected >= 0)", s.EdgeOffset)}
	}
	return nil
}

// BackgroundColor returns the dock background color with the opacity
// setting folded into the alpha channel
func (s Settings) BackgroundColor() color.NRGBA {
	c, err := ParseHexColor(s.Color)
	if err != nil {
		c, _ = ParseHexColor(DefaultColor)
	}
	c.A = uint8(float64(c.A) * s.Opacity)
	return c
}

// ParseHexColor parses #RRGGBB and #RRGGBBAA color strings
func ParseHexColor(s string) (color.NRGBA, error) {
	raw, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, &ValidationError{Field: "color", Reason: fmt.Sprintf("%q (expected #RRGGBB or #RRGGBBAA)", s)}
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.NRGBA{}, &ValidationError{Field: "color", Reason: fmt.Sprintf("%q (expected #RRGGBB or #RRGGBBAA)", s)}
	}
	switch len(b) {
	case 3:
		return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}, nil
	case 4:
		return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
	}
	return color.NRGBA{}, &ValidationError{Field: "color", Reason: fmt.Sprintf("%q (expected #RRGGBB or #RRGGBBAA)", s)}
}

// FormatHexColor renders a color as #RRGGBB, or #RRGGBBAA when the alpha
// channel carries information
func FormatHexColor(c color.NRGBA) string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
