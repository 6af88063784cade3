package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/shydock/shydock/internal/model"
)

// Hover feedback strength
const hoverTranslucency = 0.4

// dockButton is one launcher icon on the dock. Hovering lightens the icon
// and shows a tooltip with the descriptor name; tapping dispatches the
// action. The widget never mutates its descriptor.
type dockButton struct {
	widget.BaseWidget

	desc     model.ButtonDescriptor
	iconSize float32
	onTapped func(model.ButtonDescriptor)

	icon    *canvas.Image
	tooltip *widget.PopUp
}

// newDockButton creates a dock button for the descriptor. A missing or
// unreadable icon file falls back to the placeholder glyph.
func newDockButton(desc model.ButtonDescriptor, iconSize float32, onTapped func(model.ButtonDescriptor)) *dockButton {
	icon := canvas.NewImageFromResource(loadButtonIcon(desc.Icon))
	icon.FillMode = canvas.ImageFillContain

	b := &dockButton{desc: desc, iconSize: iconSize, onTapped: onTapped, icon: icon}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped implements fyne.Tappable
func (b *dockButton) Tapped(_ *fyne.PointEvent) {
	b.hideTooltip()
	if b.onTapped != nil {
		b.onTapped(b.desc)
	}
}

// MouseIn implements desktop.Hoverable
func (b *dockButton) MouseIn(_ *desktop.MouseEvent) {
	b.setHover(true)
	b.showTooltip()
}

// MouseMoved implements desktop.Hoverable
func (b *dockButton) MouseMoved(_ *desktop.MouseEvent) {
	b.setHover(true)
}

// MouseOut implements desktop.Hoverable
func (b *dockButton) MouseOut() {
	b.setHover(false)
	b.hideTooltip()
}

// Cursor implements desktop.Cursorable
func (b *dockButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// MinSize returns the configured icon cell size
func (b *dockButton) MinSize() fyne.Size {
	return fyne.NewSize(b.iconSize, b.iconSize)
}

// CreateRenderer implements fyne.Widget
func (b *dockButton) CreateRenderer() fyne.WidgetRenderer {
	return &dockButtonRenderer{b: b, icon: b.icon}
}

func (b *dockButton) setHover(on bool) {
	if on {
		b.icon.Translucency = hoverTranslucency
	} else {
		b.icon.Translucency = 0.0
	}
	b.icon.Refresh()
}

// showTooltip pops the descriptor name next to the button and arms an
// auto-hide so stale tooltips never linger over the dock
func (b *dockButton) showTooltip() {
	if b.tooltip != nil {
		return
	}
	drv := fyne.CurrentApp().Driver()
	cnv := drv.CanvasForObject(b)
	if cnv == nil {
		return
	}

	b.tooltip = widget.NewPopUp(widget.NewLabel(b.desc.Name), cnv)
	pos := drv.AbsolutePositionForObject(b)
	b.tooltip.ShowAtPosition(pos.AddXY(b.iconSize+TooltipOffset, 0))

	shown := b.tooltip
	go func() {
		time.Sleep(TooltipAutoHide)
		fyne.Do(func() {
			if b.tooltip == shown {
				b.hideTooltip()
			}
		})
	}()
}

func (b *dockButton) hideTooltip() {
	if b.tooltip == nil {
		return
	}
	b.tooltip.Hide()
	b.tooltip = nil
}

type dockButtonRenderer struct {
	b    *dockButton
	icon *canvas.Image
}

func (r *dockButtonRenderer) Layout(s fyne.Size) {
	r.icon.Resize(s)
	r.icon.Move(fyne.NewPos(0, 0))
}

func (r *dockButtonRenderer) MinSize() fyne.Size {
	return r.b.MinSize()
}

func (r *dockButtonRenderer) Refresh() {
	canvas.Refresh(r.icon)
}

func (r *dockButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.icon}
}

func (r *dockButtonRenderer) Destroy() {}
