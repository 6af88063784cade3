package model

import "testing"

var testScreen = Size{W: 1920, H: 1080}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		point    Point
		expected bool
	}{
		{Point{10, 20}, true},   // top-left corner inclusive
		{Point{109, 69}, true},  // last interior pixel
		{Point{110, 20}, false}, // right edge exclusive
		{Point{10, 70}, false},  // bottom edge exclusive
		{Point{9, 20}, false},   // left of rect
		{Point{60, 19}, false},  // above rect
		{Point{-5, -5}, false},  // negative coordinates
	}

	for _, test := range tests {
		result := r.Contains(test.point)
		if result != test.expected {
			t.Errorf("Rect%v.Contains(%v) = %v, expected %v", r, test.point, result, test.expected)
		}
	}
}

func TestDockLayout(t *testing.T) {
	s := DefaultSettings() // left edge, icon 48, spacing 8, offset 10

	tests := []struct {
		name     string
		position Edge
		cells    int
		expected Rect
	}{
		// thickness = 48 + 2*8 = 64; length for 4 cells = 4*48 + 5*8 = 232
		{"left", EdgeLeft, 4, Rect{X: 10, Y: (1080 - 232) / 2, W: 64, H: 232}},
		{"right", EdgeRight, 4, Rect{X: 1920 - 64 - 10, Y: (1080 - 232) / 2, W: 64, H: 232}},
		{"top", EdgeTop, 4, Rect{X: (1920 - 232) / 2, Y: 10, W: 232, H: 64}},
		{"bottom", EdgeBottom, 4, Rect{X: (1920 - 232) / 2, Y: 1080 - 64 - 10, W: 232, H: 64}},
	}

	for _, test := range tests {
		s.Position = test.position
		got := DockLayout(s, test.cells, testScreen)
		if got != test.expected {
			t.Errorf("%s: DockLayout() = %+v, expected %+v", test.name, got, test.expected)
		}
	}
}

func TestDockLayout_MinimumLength(t *testing.T) {
	s := DefaultSettings()

	for _, cells := range []int{0, 1, -3} {
		got := DockLayout(s, cells, testScreen)
		if got.H < MinDockLength {
			t.Errorf("DockLayout with %d cells has length %d, expected at least %d", cells, got.H, MinDockLength)
		}
	}
}

func TestDockLayout_CenteredAlongEdge(t *testing.T) {
	s := DefaultSettings()
	s.Position = EdgeBottom

	for cells := 0; cells < 10; cells++ {
		r := DockLayout(s, cells, testScreen)
		leftGap := r.X
		rightGap := testScreen.W - (r.X + r.W)
		if diff := leftGap - rightGap; diff < -1 || diff > 1 {
			t.Errorf("DockLayout with %d cells not centered: left gap %d, right gap %d", cells, leftGap, rightGap)
		}
	}
}

func TestTriggerZone(t *testing.T) {
	s := DefaultSettings()
	const margin = 20

	tests := []struct {
		name     string
		position Edge
		expected Rect
	}{
		// depth = edgeOffset 10 + margin 20 = 30
		{"left", EdgeLeft, Rect{X: 0, Y: 0, W: 30, H: 1080}},
		{"right", EdgeRight, Rect{X: 1890, Y: 0, W: 30, H: 1080}},
		{"top", EdgeTop, Rect{X: 0, Y: 0, W: 1920, H: 30}},
		{"bottom", EdgeBottom, Rect{X: 0, Y: 1050, W: 1920, H: 30}},
	}

	for _, test := range tests {
		s.Position = test.position
		got := TriggerZone(s, testScreen, margin)
		if got != test.expected {
			t.Errorf("%s: TriggerZone() = %+v, expected %+v", test.name, got, test.expected)
		}
	}
}

func TestTriggerZone_NeverEmpty(t *testing.T) {
	s := DefaultSettings()
	s.EdgeOffset = 0

	zone := TriggerZone(s, testScreen, 0)
	if zone.W < 1 {
		t.Errorf("TriggerZone with zero offset and margin has width %d, expected at least 1", zone.W)
	}
}

func TestTriggerZone_ContainsDockEdgeSide(t *testing.T) {
	s := DefaultSettings()
	const margin = 20

	for _, edge := range Edges() {
		s.Position = edge
		zone := TriggerZone(s, testScreen, margin)

		var probe Point
		switch edge {
		case EdgeLeft:
			probe = Point{0, testScreen.H / 2}
		case EdgeRight:
			probe = Point{testScreen.W - 1, testScreen.H / 2}
		case EdgeTop:
			probe = Point{testScreen.W / 2, 0}
		case EdgeBottom:
			probe = Point{testScreen.W / 2, testScreen.H - 1}
		}

		if !zone.Contains(probe) {
			t.Errorf("%s: zone %+v does not contain edge point %+v", edge, zone, probe)
		}
	}
}
