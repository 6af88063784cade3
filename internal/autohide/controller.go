package autohide

import (
	"time"

	"github.com/mordilloSan/go-logger/logger"

	"github.com/shydock/shydock/internal/model"
)

// Tunable defaults; every one can be overridden through an Option.
const (
	DefaultTickInterval      = 25 * time.Millisecond
	DefaultDebounce          = 500 * time.Millisecond
	DefaultZoneMargin        = 20
	DefaultAnimationDuration = 300 * time.Millisecond
)

// Option adjusts a Controller at construction time
type Option func(*Controller)

// WithTickInterval sets the cursor poll period
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.tickInterval = d
		}
	}
}

// WithDebounce sets how long the cursor must stay off the dock before the
// hide animation starts
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithZoneMargin sets the sensitivity margin added to the edge offset when
// computing the trigger zone depth
func WithZoneMargin(px int) Option {
	return func(c *Controller) {
		if px >= 0 {
			c.zoneMargin = px
		}
	}
}

// WithAnimationDuration sets the reveal/hide animation length
func WithAnimationDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.animDuration = d
		}
	}
}

// Controller drives the dock's visibility cycle:
//
//	hidden -> revealing -> shown -> hiding -> hidden
//
// with one reversal edge, hiding -> revealing, that resumes the reveal from
// the current partial offset. Everything advances inside Tick; the
// controller is not safe for concurrent use and is meant to be driven from
// a single goroutine.
type Controller struct {
	cursor CursorSource

	tickInterval time.Duration
	debounce     time.Duration
	zoneMargin   int
	animDuration time.Duration

	state    model.VisibilityState
	progress float64       // linear animation progress, 0 hidden .. 1 shown
	outside  time.Duration // time the cursor has spent off a shown dock
	pinned   bool

	zone model.Rect
	dock model.Rect

	onState  func(model.VisibilityState)
	onOffset func(float64)
}

// NewController returns a Controller in the hidden state. SetLayout must be
// called before the first tick so the trigger zone and dock rectangle are
// known.
func NewController(cursor CursorSource, opts ...Option) *Controller {
	c := &Controller{
		cursor:       cursor,
		tickInterval: DefaultTickInterval,
		debounce:     DefaultDebounce,
		zoneMargin:   DefaultZoneMargin,
		animDuration: DefaultAnimationDuration,
		state:        model.StateHidden,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetCallbacks registers the state-change and offset listeners. Both fire
// inside Tick, on whichever goroutine drives the ticks.
func (c *Controller) SetCallbacks(onState func(model.VisibilityState), onOffset func(float64)) {
	c.onState = onState
	c.onOffset = onOffset
}

// SetLayout pushes the rectangles the cursor is compared against. The dock
// calls it at startup and again whenever settings or the button count change.
func (c *Controller) SetLayout(s model.Settings, cells int, screen model.Size) {
	c.dock = model.DockLayout(s, cells, screen)
	c.zone = model.TriggerZone(s, screen, c.zoneMargin)
}

// TickInterval returns the poll period the controller was built with, for
// wiring the surrounding ticker
func (c *Controller) TickInterval() time.Duration {
	return c.tickInterval
}

// State returns the current machine state
func (c *Controller) State() model.VisibilityState {
	return c.state
}

// Offset returns the eased reveal fraction in [0,1]; 0 is parked off-screen,
// 1 is fully shown
func (c *Controller) Offset() float64 {
	return easeOutCubic(c.progress)
}

// Pin holds the dock visible, revealing it first if necessary. The settings
// panel pins the controller for as long as it is open.
func (c *Controller) Pin() {
	c.pinned = true
	c.outside = 0
}

// Unpin releases Pin; hiding resumes once the debounce elapses again
func (c *Controller) Unpin() {
	c.pinned = false
}

// Tick advances the machine by one poll interval. A failed cursor query
// leaves the state, the animation progress and the debounce countdown
// untouched; the next tick retries.
func (c *Controller) Tick() {
	pos, err := c.cursor.Position()
	if err != nil {
		logger.Debugf("cursor query failed, holding %s: %v", c.state, err)
		return
	}

	inZone := c.zone.Contains(pos)
	onDock := c.dock.Contains(pos)

	switch c.state {
	case model.StateHidden:
		if inZone || c.pinned {
			c.setState(model.StateRevealing)
		}

	case model.StateRevealing:
		// time-bounded: runs to completion regardless of the cursor
		c.progress += c.step()
		if c.progress >= 1 {
			c.progress = 1
			c.setState(model.StateShown)
		}
		c.emitOffset()

	case model.StateShown:
		if onDock || c.pinned {
			c.outside = 0
			return
		}
		c.outside += c.tickInterval
		if c.outside >= c.debounce {
			c.outside = 0
			c.setState(model.StateHiding)
		}

	case model.StateHiding:
		if inZone || onDock || c.pinned {
			// reversal: resume revealing from the current partial offset
			c.setState(model.StateRevealing)
			return
		}
		c.progress -= c.step()
		if c.progress <= 0 {
			c.progress = 0
			c.setState(model.StateHidden)
		}
		c.emitOffset()
	}
}

func (c *Controller) step() float64 {
	return float64(c.tickInterval) / float64(c.animDuration)
}

func (c *Controller) setState(next model.VisibilityState) {
	if next == c.state {
		return
	}
	logger.Debugf("dock %s -> %s", c.state, next)
	c.state = next
	if c.onState != nil {
		c.onState(next)
	}
}

func (c *Controller) emitOffset() {
	if c.onOffset != nil {
		c.onOffset(c.Offset())
	}
}

// easeOutCubic maps linear progress onto a curve that decelerates toward
// the end of the animation: 1-(1-p)^3
func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}
