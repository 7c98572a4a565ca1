package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	holdDelay  *widget.Entry
	holdPause  *widget.Entry
	skinSelect *widget.Select
	volume     *widget.Slider
	fullscreen *widget.Check
}

// New creates a preferences window. skinNames lists the selectable skins.
func New(app fyne.App, settings Settings, skinNames []string, onSave func(Settings)) *Window {
	window := app.NewWindow("Beatline Settings")

	holdDelay := widget.NewEntry()
	holdDelay.SetText(fmt.Sprintf("%d", settings.HoldDelay.Milliseconds()))

	holdPause := widget.NewEntry()
	holdPause.SetText(fmt.Sprintf("%d", settings.HoldReleasePause.Milliseconds()))

	skinSelect := widget.NewSelect(skinNames, nil)
	skinSelect.SetSelected(settings.SkinName)

	volume := widget.NewSlider(0, 1)
	volume.Step = 0.05
	volume.Value = settings.MasterVolume

	fullscreen := widget.NewCheck("Fullscreen", nil)
	fullscreen.SetChecked(settings.Fullscreen)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Gestures", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Hold to confirm delay"), holdDelay, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Release grace period"), holdPause, widget.NewLabel("ms")),
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Skin"), skinSelect),
		fullscreen,
		widget.NewLabelWithStyle("Audio", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Master volume"),
		volume,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 380))

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		holdDelay:  holdDelay,
		holdPause:  holdPause,
		skinSelect: skinSelect,
		volume:     volume,
		fullscreen: fullscreen,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.holdDelay.SetText(fmt.Sprintf("%d", settings.HoldDelay.Milliseconds()))
	prefs.holdPause.SetText(fmt.Sprintf("%d", settings.HoldReleasePause.Milliseconds()))
	prefs.skinSelect.SetSelected(settings.SkinName)
	prefs.volume.Value = settings.MasterVolume
	prefs.volume.Refresh()
	prefs.fullscreen.SetChecked(settings.Fullscreen)
}

// SetSkinNames replaces the selectable skin list.
func (prefs *Window) SetSkinNames(skinNames []string) {
	prefs.skinSelect.Options = skinNames
	prefs.skinSelect.Refresh()
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if millis, ok := parsePositiveInt(prefs.holdDelay.Text); ok {
		settings.HoldDelay = time.Duration(millis) * time.Millisecond
	}
	if millis, ok := parsePositiveInt(prefs.holdPause.Text); ok {
		settings.HoldReleasePause = time.Duration(millis) * time.Millisecond
	}
	if prefs.skinSelect.Selected != "" {
		settings.SkinName = prefs.skinSelect.Selected
	}
	settings.MasterVolume = prefs.volume.Value
	settings.Fullscreen = prefs.fullscreen.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
