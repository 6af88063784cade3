package ui

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/mordilloSan/go-logger/logger"

	"github.com/shydock/shydock/internal/autohide"
	"github.com/shydock/shydock/internal/config"
	"github.com/shydock/shydock/internal/model"
	"github.com/shydock/shydock/internal/platform"
)

// AppInfo carries the static facts shown on the info tab
type AppInfo struct {
	Name      string
	Version   string
	ConfigDir string
}

// Panel singleton: reopening the settings focuses the existing window
var (
	panelMu   sync.Mutex
	openPanel *SettingsPanel
)

// SettingsPanel edits a working copy of the dock configuration in a tabbed
// window. Nothing reaches the live model until Save: a validation failure
// keeps the window open with the offending field flagged, Cancel or closing
// the window discards every edit. While the panel is open the dock is
// pinned visible.
type SettingsPanel struct {
	app        fyne.App
	manager    *config.Manager
	controller *autohide.Controller
	info       AppInfo

	window fyne.Window

	// working copy, committed only by Save
	work        model.Settings
	workButtons []model.ButtonDescriptor

	// customization tab
	positionSelect  *widget.Select
	opacitySlider   *widget.Slider
	colorEntry      *widget.Entry
	cornerEntry     *widget.Entry
	iconSizeEntry   *widget.Entry
	spacingEntry    *widget.Entry
	edgeOffsetEntry *widget.Entry
	errorLabel      *widget.Label

	// buttons tab
	buttonList  *widget.List
	nameEntry   *widget.Entry
	iconEntry   *widget.Entry
	actionEntry *widget.Entry
	selected    int
}

// ShowSettingsPanel opens the settings window, or focuses the one already
// open. The controller stays pinned until the window closes.
func ShowSettingsPanel(app fyne.App, manager *config.Manager, controller *autohide.Controller, info AppInfo) *SettingsPanel {
	panelMu.Lock()
	defer panelMu.Unlock()

	if openPanel != nil {
		openPanel.window.RequestFocus()
		return openPanel
	}

	p := newSettingsPanel(app, manager, controller, info)
	openPanel = p
	controller.Pin()
	p.window.Show()
	return p
}

func newSettingsPanel(app fyne.App, manager *config.Manager, controller *autohide.Controller, info AppInfo) *SettingsPanel {
	p := &SettingsPanel{
		app:        app,
		manager:    manager,
		controller: controller,
		info:       info,
		selected:   -1,
	}

	p.window = app.NewWindow(info.Name + " Settings")
	p.createUI()
	p.loadWorkingCopy()

	p.window.SetOnClosed(func() {
		controller.Unpin()
		panelMu.Lock()
		openPanel = nil
		panelMu.Unlock()
	})

	p.window.Resize(fyne.NewSize(SettingsWindowWidth, SettingsWindowHeight))
	p.window.SetFixedSize(true)
	p.window.CenterOnScreen()
	return p
}

// createUI assembles the tabs and the Save/Cancel row
func (p *SettingsPanel) createUI() {
	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Customization", theme.ColorPaletteIcon(), p.customizationTab()),
		container.NewTabItemWithIcon("Buttons", theme.ListIcon(), p.buttonsTab()),
		container.NewTabItemWithIcon("Info", theme.InfoIcon(), p.infoTab()),
	)

	p.errorLabel = widget.NewLabel("")
	p.errorLabel.Importance = widget.DangerImportance
	p.errorLabel.Hide()

	saveBtn := widget.NewButtonWithIcon("Save", theme.ConfirmIcon(), p.onSave)
	saveBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton("Cancel", p.window.Close)

	bottom := container.NewVBox(
		p.errorLabel,
		container.NewBorder(nil, nil, cancelBtn, saveBtn),
	)
	p.window.SetContent(container.NewBorder(nil, bottom, nil, nil, tabs))
}

func (p *SettingsPanel) customizationTab() fyne.CanvasObject {
	options := make([]string, 0, len(model.Edges()))
	for _, e := range model.Edges() {
		options = append(options, e.String())
	}
	p.positionSelect = widget.NewSelect(options, nil)

	p.opacitySlider = widget.NewSlider(0, 1)
	p.opacitySlider.Step = 0.05

	p.colorEntry = widget.NewEntry()
	p.colorEntry.SetPlaceHolder("#RRGGBB")
	pickBtn := widget.NewButtonWithIcon("", theme.ColorChromaticIcon(), p.onPickColor)
	colorRow := container.NewBorder(nil, nil, nil, pickBtn, p.colorEntry)

	p.cornerEntry = widget.NewEntry()
	p.iconSizeEntry = widget.NewEntry()
	p.spacingEntry = widget.NewEntry()
	p.edgeOffsetEntry = widget.NewEntry()

	return container.NewVBox(
		widget.NewLabel("Position:"),
		p.positionSelect,
		widget.NewLabel("Opacity:"),
		p.opacitySlider,
		widget.NewLabel("Color:"),
		colorRow,
		widget.NewLabel("Corner Radius (px):"),
		p.cornerEntry,
		widget.NewLabel("Icon Size (px):"),
		p.iconSizeEntry,
		widget.NewLabel("Spacing (px):"),
		p.spacingEntry,
		widget.NewLabel("Edge Offset (px):"),
		p.edgeOffsetEntry,
	)
}

func (p *SettingsPanel) buttonsTab() fyne.CanvasObject {
	p.buttonList = widget.NewList(
		func() int { return len(p.workButtons) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(p.workButtons[id].Name)
		},
	)
	p.buttonList.OnSelected = func(id widget.ListItemID) {
		p.selected = id
		p.nameEntry.SetText(p.workButtons[id].Name)
		p.iconEntry.SetText(p.workButtons[id].Icon)
		p.actionEntry.SetText(p.workButtons[id].Action)
	}

	p.nameEntry = widget.NewEntry()
	p.nameEntry.SetPlaceHolder("Name (shown as tooltip)")
	p.iconEntry = widget.NewEntry()
	p.iconEntry.SetPlaceHolder("Icon path (optional)")
	browseBtn := widget.NewButtonWithIcon("", theme.FolderOpenIcon(), p.onBrowseIcon)
	iconRow := container.NewBorder(nil, nil, nil, browseBtn, p.iconEntry)
	p.actionEntry = widget.NewEntry()
	p.actionEntry.SetPlaceHolder("Shell command")

	addBtn := widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), p.onAddButton)
	updateBtn := widget.NewButton("Update", p.onUpdateButton)
	removeBtn := widget.NewButtonWithIcon("Remove", theme.DeleteIcon(), p.onRemoveButton)
	upBtn := widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() { p.onMoveButton(-1) })
	downBtn := widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() { p.onMoveButton(1) })

	form := container.NewVBox(
		p.nameEntry,
		iconRow,
		p.actionEntry,
		container.NewHBox(addBtn, updateBtn, removeBtn, upBtn, downBtn),
	)
	return container.NewBorder(nil, form, nil, nil, p.buttonList)
}

func (p *SettingsPanel) infoTab() fyne.CanvasObject {
	openBtn := widget.NewButtonWithIcon("Open Config Folder", theme.FolderIcon(), func() {
		if err := platform.OpenDirectory(p.info.ConfigDir); err != nil {
			logger.Warnf("open config dir: %v", err)
		}
	})

	return container.NewVBox(
		widget.NewLabelWithStyle(p.info.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Version "+p.info.Version, fyne.TextAlignCenter, fyne.TextStyle{}),
		widget.NewSeparator(),
		widget.NewLabel("Configuration: "+p.info.ConfigDir),
		openBtn,
	)
}

// loadWorkingCopy snapshots the live configuration into the panel. The
// snapshot is all the panel edits until Save commits it.
func (p *SettingsPanel) loadWorkingCopy() {
	p.work = p.manager.Settings()
	p.workButtons = p.manager.Buttons()
	p.selected = -1

	p.positionSelect.SetSelected(p.work.Position.String())
	p.opacitySlider.SetValue(p.work.Opacity)
	p.colorEntry.SetText(p.work.Color)
	p.cornerEntry.SetText(strconv.FormatFloat(float64(p.work.CornerRadius), 'f', -1, 32))
	p.iconSizeEntry.SetText(strconv.FormatFloat(float64(p.work.IconSize), 'f', -1, 32))
	p.spacingEntry.SetText(strconv.FormatFloat(float64(p.work.Spacing), 'f', -1, 32))
	p.edgeOffsetEntry.SetText(strconv.Itoa(p.work.EdgeOffset))
	p.buttonList.Refresh()
}

func (p *SettingsPanel) onPickColor() {
	picker := dialog.NewColorPicker("Dock Color", "", func(c color.Color) {
		nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
		p.colorEntry.SetText(model.FormatHexColor(nrgba))
	}, p.window)
	picker.Advanced = true
	picker.Show()
}

func (p *SettingsPanel) onBrowseIcon() {
	dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		p.iconEntry.SetText(rc.URI().Path())
		rc.Close()
	}, p.window)
}

func (p *SettingsPanel) onAddButton() {
	d := p.descriptorFromForm()
	if err := d.Validate(); err != nil {
		p.flagError(err)
		return
	}
	p.clearError()
	p.workButtons = append(p.workButtons, d)
	p.buttonList.Refresh()
	p.buttonList.Select(len(p.workButtons) - 1)
}

func (p *SettingsPanel) onUpdateButton() {
	if p.selected < 0 || p.selected >= len(p.workButtons) {
		return
	}
	d := p.descriptorFromForm()
	if err := d.Validate(); err != nil {
		p.flagError(err)
		return
	}
	p.clearError()
	p.workButtons[p.selected] = d
	p.buttonList.Refresh()
}

func (p *SettingsPanel) onRemoveButton() {
	if p.selected < 0 || p.selected >= len(p.workButtons) {
		return
	}
	p.workButtons = append(p.workButtons[:p.selected], p.workButtons[p.selected+1:]...)
	p.selected = -1
	p.buttonList.UnselectAll()
	p.buttonList.Refresh()
	p.nameEntry.SetText("")
	p.iconEntry.SetText("")
	p.actionEntry.SetText("")
}

func (p *SettingsPanel) onMoveButton(delta int) {
	if p.selected < 0 {
		return
	}
	next, err := model.MoveButton(p.workButtons, p.selected, p.selected+delta)
	if err != nil {
		// moving past either end is a no-op, not a user error
		return
	}
	p.workButtons = next
	p.selected += delta
	p.buttonList.Refresh()
	p.buttonList.Select(p.selected)
}

func (p *SettingsPanel) descriptorFromForm() model.ButtonDescriptor {
	return model.ButtonDescriptor{
		Name:   p.nameEntry.Text,
		Icon:   p.iconEntry.Text,
		Action: p.actionEntry.Text,
	}
}

// onSave validates the working copy and commits it through the manager:
// settings first, then the button list. A validation failure flags the field
// and keeps the window open; a write failure keeps the previous state on
// disk and in memory and reports through a dialog.
func (p *SettingsPanel) onSave() {
	work, err := p.settingsFromForm()
	if err != nil {
		p.flagError(err)
		return
	}
	if err := work.Validate(); err != nil {
		p.flagError(err)
		return
	}

	if err := p.manager.ApplySettings(work); err != nil {
		p.reportSaveError(err)
		return
	}
	if err := p.manager.ReplaceButtons(p.workButtons); err != nil {
		p.reportSaveError(err)
		return
	}

	logger.Infof("settings saved: %d buttons, dock at %s", len(p.workButtons), work.Position)
	p.window.Close()
}

// settingsFromForm parses the customization widgets into a Settings value.
// Parse failures come back as ValidationErrors naming the field.
func (p *SettingsPanel) settingsFromForm() (model.Settings, error) {
	s := p.work
	s.Position = model.Edge(p.positionSelect.Selected)
	s.Opacity = p.opacitySlider.Value
	s.Color = p.colorEntry.Text

	corner, err := parseFloatField("cornerRadius", p.cornerEntry.Text)
	if err != nil {
		return s, err
	}
	s.CornerRadius = corner

	iconSize, err := parseFloatField("iconSize", p.iconSizeEntry.Text)
	if err != nil {
		return s, err
	}
	s.IconSize = iconSize

	spacing, err := parseFloatField("spacing", p.spacingEntry.Text)
	if err != nil {
		return s, err
	}
	s.Spacing = spacing

	offset, err := strconv.Atoi(p.edgeOffsetEntry.Text)
	if err != nil {
		return s, &model.ValidationError{Field: "edgeOffset", Reason: fmt.Sprintf("%q (expected a whole number)", p.edgeOffsetEntry.Text)}
	}
	s.EdgeOffset = offset

	return s, nil
}

func parseFloatField(field, text string) (float32, error) {
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, &model.ValidationError{Field: field, Reason: fmt.Sprintf("%q (expected a number)", text)}
	}
	return float32(v), nil
}

func (p *SettingsPanel) flagError(err error) {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		p.errorLabel.SetText("Invalid " + ve.Field + ": " + ve.Reason)
	} else {
		p.errorLabel.SetText(err.Error())
	}
	p.errorLabel.Show()
}

func (p *SettingsPanel) clearError() {
	p.errorLabel.SetText("")
	p.errorLabel.Hide()
}

func (p *SettingsPanel) reportSaveError(err error) {
	var we *config.WriteError
	if errors.As(err, &we) {
		dialog.ShowError(we, p.window)
		return
	}
	p.flagError(err)
}
