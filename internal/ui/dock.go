package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/mordilloSan/go-logger/logger"

	"github.com/shydock/shydock/internal/autohide"
	"github.com/shydock/shydock/internal/config"
	"github.com/shydock/shydock/internal/launch"
	"github.com/shydock/shydock/internal/model"
)

// Dock is the edge panel: a borderless window holding the background plate
// and one launcher button per descriptor, plus a trailing gear button that
// opens the settings panel. It renders from the read-only configuration view
// and rebuilds itself whenever the view notifies a change.
type Dock struct {
	window     fyne.Window
	view       config.View
	controller *autohide.Controller
	launcher   launch.Launcher
	screen     model.Size
	onSettings func()

	bg      *canvas.Rectangle
	buttons *fyne.Container
	content *fyne.Container

	buttonWidgets []*dockButton
	rect          model.Rect
}

// NewDock builds the dock surface inside the given window and wires it to
// the auto-hide controller. The controller's callbacks are claimed here;
// whoever drives the ticks must do so on the UI thread.
func NewDock(window fyne.Window, view config.View, controller *autohide.Controller, launcher launch.Launcher, screen model.Size, onSettings func()) *Dock {
	d := &Dock{
		window:     window,
		view:       view,
		controller: controller,
		launcher:   launcher,
		screen:     screen,
		onSettings: onSettings,
		bg:         canvas.NewRectangle(color.Transparent),
		buttons:    container.NewWithoutLayout(),
	}
	d.content = container.NewWithoutLayout(d.bg, d.buttons)

	window.SetPadded(false)
	window.SetContent(d.content)

	controller.SetCallbacks(
		func(model.VisibilityState) { d.applyOffset(controller.Offset()) },
		d.applyOffset,
	)

	d.Rebuild()
	go d.watchConfig()
	return d
}

// Rect returns the dock's resting bounding rectangle in screen coordinates
func (d *Dock) Rect() model.Rect {
	return d.rect
}

// Rebuild recomputes the layout from the current settings and button list
// and recreates the button widgets. It must run on the UI thread.
func (d *Dock) Rebuild() {
	settings := d.view.Settings()
	descriptors := d.view.Buttons()

	// the gear occupies one cell at the tail of the dock
	cells := len(descriptors) + 1
	d.rect = model.DockLayout(settings, cells, d.screen)
	d.controller.SetLayout(settings, cells, d.screen)

	size := fyne.NewSize(float32(d.rect.W), float32(d.rect.H))
	d.window.Resize(size)
	d.content.Resize(size)

	d.bg.FillColor = settings.BackgroundColor()
	d.bg.CornerRadius = settings.CornerRadius
	d.bg.Resize(size)
	d.bg.Move(fyne.NewPos(0, 0))

	d.buttons.Objects = nil
	d.buttonWidgets = d.buttonWidgets[:0]

	icon := settings.IconSize
	gap := settings.Spacing
	place := func(i int, obj fyne.CanvasObject) {
		along := gap + float32(i)*(icon+gap)
		if settings.Position.Horizontal() {
			obj.Move(fyne.NewPos(along, gap))
		} else {
			obj.Move(fyne.NewPos(gap, along))
		}
		obj.Resize(fyne.NewSize(icon, icon))
		d.buttons.Add(obj)
	}

	for i, desc := range descriptors {
		btn := newDockButton(desc, icon, d.onButtonTapped)
		place(i, btn)
		d.buttonWidgets = append(d.buttonWidgets, btn)
	}

	gear := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if d.onSettings != nil {
			d.onSettings()
		}
	})
	gear.Importance = widget.LowImportance
	place(len(descriptors), gear)

	d.buttons.Resize(size)
	d.applyOffset(d.controller.Offset())
	d.content.Refresh()
}

// applyOffset slides the panel content toward or away from the screen edge.
// At offset 0 only the grab sliver remains inside the window, at 1 the dock
// rests fully visible.
func (d *Dock) applyOffset(offset float64) {
	settings := d.view.Settings()

	thickness := float32(d.rect.H)
	if !settings.Position.Horizontal() {
		thickness = float32(d.rect.W)
	}
	travel := (thickness - HiddenSliver) * float32(1-offset)

	var pos fyne.Position
	switch settings.Position {
	case model.EdgeTop:
		pos = fyne.NewPos(0, -travel)
	case model.EdgeBottom:
		pos = fyne.NewPos(0, travel)
	case model.EdgeRight:
		pos = fyne.NewPos(travel, 0)
	default:
		pos = fyne.NewPos(-travel, 0)
	}
	d.content.Move(pos)
}

// onButtonTapped hands the action to the launcher. Failure surfaces as an
// ephemeral toast; there is no retry and no history.
func (d *Dock) onButtonTapped(desc model.ButtonDescriptor) {
	id, err := d.launcher.Launch(desc.Action)
	if err != nil {
		logger.Errorf("button %q: %v", desc.Name, err)
		d.showToast("Failed to launch " + desc.Name)
		return
	}
	logger.Debugf("[%s] button %q dispatched", id, desc.Name)
}

// showToast pops a short auto-dismissing notification over the dock
func (d *Dock) showToast(message string) {
	popup := widget.NewPopUp(widget.NewLabel(message), d.window.Canvas())
	popup.ShowAtPosition(fyne.NewPos(ToastMargin, ToastMargin))

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(popup.Hide)
	}()
}

// watchConfig rebuilds the surface after every committed configuration
// change, hopping onto the UI thread first
func (d *Dock) watchConfig() {
	ch := d.view.Subscribe()
	for range ch {
		fyne.Do(d.Rebuild)
	}
}
