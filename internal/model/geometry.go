package model

// Point is a position in screen coordinates
type Point struct {
	X int
	Y int
}

// Size is a width/height pair in screen pixels
type Size struct {
	W int
	H int
}

// Rect is an axis-aligned rectangle in screen coordinates
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether p lies inside the rectangle. Left/top edges are
// inclusive, right/bottom exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// MinDockLength keeps an empty or near-empty dock long enough to hover over
const MinDockLength = 120

// DockLayout computes the dock's resting bounding rectangle for the given
// number of button cells: centered along the configured edge and offset from
// it by EdgeOffset. The long side grows with the cell count, the short side
// is one icon plus the surrounding spacing.
func DockLayout(s Settings, cells int, screen Size) Rect {
	if cells < 0 {
		cells = 0
	}
	icon := int(s.IconSize)
	gap := int(s.Spacing)
	thickness := icon + 2*gap
	length := cells*icon + (cells+1)*gap
	if length < MinDockLength {
		length = MinDockLength
	}
	switch s.Position {
	case EdgeTop:
		return Rect{X: (screen.W - length) / 2, Y: s.EdgeOffset, W: length, H: thickness}
	case EdgeBottom:
		return Rect{X: (screen.W - length) / 2, Y: screen.H - thickness - s.EdgeOffset, W: length, H: thickness}
	case EdgeRight:
		return Rect{X: screen.W - thickness - s.EdgeOffset, Y: (screen.H - length) / 2, W: thickness, H: length}
	default:
		return Rect{X: s.EdgeOffset, Y: (screen.H - length) / 2, W: thickness, H: length}
	}
}

// TriggerZone computes the strip along the configured edge that wakes a
// hidden dock. Its depth is the edge offset plus the sensitivity margin
// (floored at one pixel so the dock always stays wakeable), its length spans
// the full edge.
func TriggerZone(s Settings, screen Size, margin int) Rect {
	depth := s.EdgeOffset + margin
	if depth < 1 {
		depth = 1
	}
	switch s.Position {
	case EdgeTop:
		return Rect{X: 0, Y: 0, W: screen.W, H: depth}
	case EdgeBottom:
		return Rect{X: 0, Y: screen.H - depth, W: screen.W, H: depth}
	case EdgeRight:
		return Rect{X: screen.W - depth, Y: 0, W: depth, H: screen.H}
	default:
		return Rect{X: 0, Y: 0, W: depth, H: screen.H}
	}
}
