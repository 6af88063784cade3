package autohide

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shydock/shydock/internal/model"
)

// testTick is chosen so the animation (4 ticks) and the debounce (5 ticks)
// divide evenly and progress arithmetic stays exact.
const testTick = 100 * time.Millisecond

var (
	pointInZone  = model.Point{X: 5, Y: 500}    // inside the left trigger strip
	pointOnDock  = model.Point{X: 40, Y: 500}   // inside the dock rect, outside the strip
	pointOutside = model.Point{X: 1000, Y: 500} // far from both
)

type scriptedCursor struct {
	pos model.Point
	err error
}

func (sc *scriptedCursor) Position() (model.Point, error) {
	return sc.pos, sc.err
}

func newTestController(cursor *scriptedCursor) *Controller {
	c := NewController(cursor,
		WithTickInterval(testTick),
		WithAnimationDuration(4*testTick),
		WithDebounce(5*testTick),
		WithZoneMargin(20),
	)
	c.SetLayout(model.DefaultSettings(), 2, model.Size{W: 1920, H: 1080})
	return c
}

func tickN(c *Controller, n int) {
	for i := 0; i < n; i++ {
		c.Tick()
	}
}

func reveal(t *testing.T, c *Controller, cursor *scriptedCursor) {
	t.Helper()
	cursor.pos = pointInZone
	for i := 0; i < 10; i++ {
		c.Tick()
		if c.State() == model.StateShown {
			return
		}
	}
	t.Fatalf("controller did not reach %s, stuck at %s", model.StateShown, c.State())
}

func TestController_StartsHidden(t *testing.T) {
	c := newTestController(&scriptedCursor{pos: pointOutside})

	if c.State() != model.StateHidden {
		t.Errorf("initial state = %s, expected %s", c.State(), model.StateHidden)
	}
	if c.Offset() != 0 {
		t.Errorf("initial offset = %v, expected 0", c.Offset())
	}
}

func TestController_RevealPassesThroughRevealing(t *testing.T) {
	cursor := &scriptedCursor{pos: pointInZone}
	c := newTestController(cursor)

	var states []model.VisibilityState
	c.SetCallbacks(func(s model.VisibilityState) { states = append(states, s) }, nil)

	c.Tick()
	if c.State() != model.StateRevealing {
		t.Fatalf("state after entering zone = %s, expected %s", c.State(), model.StateRevealing)
	}

	tickN(c, 4)
	if c.State() != model.StateShown {
		t.Fatalf("state after reveal animation = %s, expected %s", c.State(), model.StateShown)
	}

	expected := []model.VisibilityState{model.StateRevealing, model.StateShown}
	if len(states) != len(expected) {
		t.Fatalf("state sequence %v, expected %v", states, expected)
	}
	for i := range expected {
		if states[i] != expected[i] {
			t.Errorf("state sequence %v, expected %v", states, expected)
			break
		}
	}
}

func TestController_OffsetMonotonicDuringReveal(t *testing.T) {
	cursor := &scriptedCursor{pos: pointInZone}
	c := newTestController(cursor)

	c.Tick() // hidden -> revealing
	last := c.Offset()
	for i := 0; i < 4; i++ {
		c.Tick()
		if c.Offset() < last {
			t.Fatalf("offset regressed during reveal: %v after %v", c.Offset(), last)
		}
		last = c.Offset()
	}
	if last != 1 {
		t.Errorf("offset after reveal = %v, expected 1", last)
	}
}

func TestController_HidesAfterDebounce(t *testing.T) {
	cursor := &scriptedCursor{}
	c := newTestController(cursor)
	reveal(t, c, cursor)

	cursor.pos = pointOutside
	tickN(c, 4)
	if c.State() != model.StateShown {
		t.Fatalf("state before debounce elapsed = %s, expected %s", c.State(), model.StateShown)
	}

	c.Tick()
	if c.State() != model.StateHiding {
		t.Fatalf("state after debounce = %s, expected %s", c.State(), model.StateHiding)
	}

	tickN(c, 4)
	if c.State() != model.StateHidden {
		t.Errorf("state after hide animation = %s, expected %s", c.State(), model.StateHidden)
	}
	if c.Offset() != 0 {
		t.Errorf("offset after hiding = %v, expected 0", c.Offset())
	}
}

func TestController_ConvergesToHiddenFromAnyPoint(t *testing.T) {
	cursor := &scriptedCursor{}
	c := newTestController(cursor)
	reveal(t, c, cursor)

	cursor.pos = pointOutside
	for i := 0; i < 20; i++ {
		c.Tick()
		if c.State() == model.StateHidden {
			return
		}
	}
	t.Fatalf("controller did not converge to %s, stuck at %s", model.StateHidden, c.State())
}

func TestController_ReentryResetsDebounce(t *testing.T) {
	cursor := &scriptedCursor{}
	c := newTestController(cursor)
	reveal(t, c, cursor)

	cursor.pos = pointOutside
	tickN(c, 3)
	cursor.pos = pointOnDock
	c.Tick() // re-entry, countdown resets
	cursor.pos = pointOutside
	tickN(c, 4)

	if c.State() != model.StateShown {
		t.Fatalf("state = %s, expected %s (debounce should have restarted)", c.State(), model.StateShown)
	}

	c.Tick()
	if c.State() != model.StateHiding {
		t.Errorf("state = %s, expected %s after full debounce", c.State(), model.StateHiding)
	}
}

func TestController_ReversalResumesFromPartialOffset(t *testing.T) {
	cursor := &scriptedCursor{}
	c := newTestController(cursor)
	reveal(t, c, cursor)

	cursor.pos = pointOutside
	tickN(c, 5) // shown -> hiding
	tickN(c, 2) // partially hidden
	if c.State() != model.StateHiding {
		t.Fatalf("state = %s, expected %s", c.State(), model.StateHiding)
	}

	partial := c.Offset()
	if partial <= 0 || partial >= 1 {
		t.Fatalf("offset mid-hide = %v, expected a partial value", partial)
	}

	cursor.pos = pointInZone
	c.Tick()
	if c.State() != model.StateRevealing {
		t.Fatalf("state after re-entry = %s, expected %s", c.State(), model.StateRevealing)
	}
	if c.Offset() != partial {
		t.Fatalf("offset snapped on reversal: %v, expected %v", c.Offset(), partial)
	}

	for i := 0; i < 10 && c.State() != model.StateShown; i++ {
		c.Tick()
		if c.Offset() < partial {
			t.Fatalf("offset dropped below reversal point: %v < %v", c.Offset(), partial)
		}
	}
	if c.State() != model.StateShown {
		t.Errorf("state after resumed reveal = %s, expected %s", c.State(), model.StateShown)
	}
}

func TestController_NeverHiddenToShownDirectly(t *testing.T) {
	cursor := &scriptedCursor{}
	c := newTestController(cursor)

	prev := c.State()
	c.SetCallbacks(func(next model.VisibilityState) {
		if prev == model.StateHidden && next == model.StateShown {
			t.Fatalf("illegal transition %s -> %s", prev, next)
		}
		prev = next
	}, nil)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		cursor.pos = model.Point{X: r.Intn(1920), Y: r.Intn(1080)}
		if r.Intn(10) == 0 {
			cursor.err = errors.New("display gone")
		} else {
			cursor.err = nil
		}
		c.Tick()
	}
}

func TestController_CursorErrorHoldsState(t *testing.T) {
	cursor := &scriptedCursor{}
	c := newTestController(cursor)
	reveal(t, c, cursor)

	cursor.pos = pointOutside
	tickN(c, 3)
	countdown := c.outside

	cursor.err = errors.New("xdotool not found")
	tickN(c, 10)
	if c.State() != model.StateShown {
		t.Fatalf("state while cursor queries fail = %s, expected %s", c.State(), model.StateShown)
	}
	if c.outside != countdown {
		t.Errorf("debounce countdown advanced during failures: %v, expected %v", c.outside, countdown)
	}

	cursor.err = nil
	tickN(c, 2)
	if c.State() != model.StateHiding {
		t.Errorf("state after recovery = %s, expected %s", c.State(), model.StateHiding)
	}
}

func TestController_ErrorWhileHiddenStaysHidden(t *testing.T) {
	cursor := &scriptedCursor{pos: pointInZone, err: errors.New("no display")}
	c := newTestController(cursor)

	tickN(c, 10)
	if c.State() != model.StateHidden {
		t.Errorf("state = %s, expected %s while queries fail", c.State(), model.StateHidden)
	}

	cursor.err = nil
	c.Tick()
	if c.State() != model.StateRevealing {
		t.Errorf("state after recovery = %s, expected %s", c.State(), model.StateRevealing)
	}
}

func TestController_PinHoldsDockVisible(t *testing.T) {
	cursor := &scriptedCursor{}
	c := newTestController(cursor)
	reveal(t, c, cursor)

	c.Pin()
	cursor.pos = pointOutside
	tickN(c, 50)
	if c.State() != model.StateShown {
		t.Fatalf("pinned state = %s, expected %s", c.State(), model.StateShown)
	}

	c.Unpin()
	tickN(c, 5)
	if c.State() != model.StateHiding {
		t.Errorf("state after unpin = %s, expected %s", c.State(), model.StateHiding)
	}
}

func TestController_PinRevealsHiddenDock(t *testing.T) {
	cursor := &scriptedCursor{pos: pointOutside}
	c := newTestController(cursor)

	c.Pin()
	c.Tick()
	if c.State() != model.StateRevealing {
		t.Fatalf("pinned hidden dock state = %s, expected %s", c.State(), model.StateRevealing)
	}

	tickN(c, 4)
	if c.State() != model.StateShown {
		t.Errorf("pinned dock state = %s, expected %s", c.State(), model.StateShown)
	}
}

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{0.25, 0.578125},
		{0.5, 0.875},
		{1, 1},
	}

	for _, test := range tests {
		result := easeOutCubic(test.in)
		if result != test.expected {
			t.Errorf("easeOutCubic(%v) = %v, expected %v", test.in, result, test.expected)
		}
	}
}
