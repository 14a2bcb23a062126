package preferences

import (
	"strconv"

	"highvis/internal/ui/display"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error"}

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	initial    *widget.Entry
	fullscreen *widget.Check
	logLevel   *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("HighVis Settings")

	initial := widget.NewEntry()
	initial.Validator = func(text string) error {
		_, err := display.ParseSeconds(text)
		return err
	}
	fullscreen := widget.NewCheck("Fullscreen window", nil)
	logLevel := widget.NewSelect(logLevels, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Default countdown"), initial, widget.NewLabel("sec")),
		fullscreen,
		container.NewHBox(widget.NewLabel("Log level"), logLevel),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 220))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		initial:    initial,
		fullscreen: fullscreen,
		logLevel:   logLevel,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

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
	prefs.initial.SetText(strconv.Itoa(settings.InitialTime))
	prefs.fullscreen.SetChecked(settings.Fullscreen)
	prefs.logLevel.SetSelected(settings.LogLevel)
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	// Unparseable input keeps the previous value.
	if seconds, err := display.ParseSeconds(prefs.initial.Text); err == nil {
		settings.InitialTime = seconds
	}
	settings.Fullscreen = prefs.fullscreen.Checked
	if prefs.logLevel.Selected != "" {
		settings.LogLevel = prefs.logLevel.Selected
	}

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
