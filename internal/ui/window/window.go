package window

import (
	"image/color"

	"highvis/internal/core/model"
	"highvis/internal/ui/display"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Config defines window visuals.
type Config struct {
	Title      string
	Fullscreen bool
}

// Callbacks forwards user intents to the controller.
type Callbacks struct {
	OnStart          func()
	OnPause          func()
	OnStop           func()
	OnSetInitialTime func(seconds int)
}

// Window is the single stopwatch screen.
type Window struct {
	window       fyne.Window
	config       Config
	callbacks    Callbacks
	state        model.State
	timeText     *canvas.Text
	progress     *widget.ProgressBar
	primary      *widget.Button
	stopButton   *widget.Button
	changeButton *widget.Button
}

const (
	timeTextSize  = float32(160)
	defaultWidth  = float32(480)
	defaultHeight = float32(560)
)

var timeTextColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}

// New creates the stopwatch window showing Initial(default).
func New(app fyne.App, config Config, callbacks Callbacks) *Window {
	if config.Title == "" {
		config.Title = "HighVis Stopwatch"
	}
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timeText := canvas.NewText("", timeTextColor)
	timeText.Alignment = fyne.TextAlignCenter
	timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeText.TextSize = timeTextSize

	progress := widget.NewProgressBar()

	view := &Window{
		window:    window,
		config:    config,
		callbacks: callbacks,
		timeText:  timeText,
		progress:  progress,
	}

	view.primary = widget.NewButtonWithIcon(string(display.ActionStart), theme.MediaPlayIcon(), view.handlePrimary)
	view.primary.Importance = widget.HighImportance
	view.stopButton = widget.NewButtonWithIcon("Stop", theme.MediaStopIcon(), func() {
		if view.callbacks.OnStop != nil {
			view.callbacks.OnStop()
		}
	})
	view.changeButton = widget.NewButtonWithIcon("Change time", theme.HistoryIcon(), view.showChangeDialog)

	progress.TextFormatter = func() string {
		if view.state == nil {
			return ""
		}
		return display.Clock(view.state)
	}

	top := container.NewCenter(view.changeButton)
	bottom := container.NewHBox(layout.NewSpacer(), view.stopButton, view.primary, layout.NewSpacer())
	center := container.NewBorder(nil, container.NewPadded(progress), nil, nil, container.NewCenter(timeText))
	window.SetContent(container.NewBorder(top, bottom, nil, nil, center))

	view.Render(model.NewInitial(0))
	view.applyWindowMode()

	return view
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// ShowAndRun displays the window and runs the application loop.
func (view *Window) ShowAndRun() {
	view.window.ShowAndRun()
}

// SetOnClosed sets the handler run when the user closes the window.
func (view *Window) SetOnClosed(handler func()) {
	view.window.SetOnClosed(handler)
}

// UpdateConfig updates window visuals.
func (view *Window) UpdateConfig(config Config) {
	if config.Title == "" {
		config.Title = view.config.Title
	}
	view.config = config
	view.window.SetTitle(config.Title)
	view.applyWindowMode()
}

// Render shows state. It must run on the Fyne thread.
func (view *Window) Render(state model.State) {
	view.state = state
	controls := display.ControlsFor(state)

	view.timeText.Text = display.RemainingText(state)
	view.timeText.Refresh()
	view.progress.SetValue(display.Progress(state))

	view.primary.SetText(string(controls.Primary))
	if controls.Primary == display.ActionPause {
		view.primary.SetIcon(theme.MediaPauseIcon())
	} else {
		view.primary.SetIcon(theme.MediaPlayIcon())
	}
	setEnabled(view.stopButton, controls.StopEnabled)
	setEnabled(view.changeButton, controls.ChangeEnabled)
}

func (view *Window) handlePrimary() {
	switch display.ControlsFor(view.state).Primary {
	case display.ActionPause:
		if view.callbacks.OnPause != nil {
			view.callbacks.OnPause()
		}
	default:
		if view.callbacks.OnStart != nil {
			view.callbacks.OnStart()
		}
	}
}

func (view *Window) showChangeDialog() {
	if !display.ControlsFor(view.state).ChangeEnabled {
		return
	}
	entry := widget.NewEntry()
	entry.SetPlaceHolder(display.RemainingText(view.state))
	entry.Validator = func(text string) error {
		_, err := display.ParseSeconds(text)
		return err
	}

	items := []*widget.FormItem{widget.NewFormItem("Seconds", entry)}
	form := dialog.NewForm("Enter initial time", "Enter", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := view.submitInitialTime(entry.Text); err != nil {
			dialog.ShowError(err, view.window)
		}
	}, view.window)
	form.Show()
	view.window.Canvas().Focus(entry)
}

// submitInitialTime validates typed text and forwards it. Invalid input never
// reaches the controller.
func (view *Window) submitInitialTime(text string) error {
	seconds, err := display.ParseSeconds(text)
	if err != nil {
		return err
	}
	if view.callbacks.OnSetInitialTime != nil {
		view.callbacks.OnSetInitialTime(seconds)
	}
	return nil
}

func (view *Window) applyWindowMode() {
	if view.config.Fullscreen {
		view.window.SetFullScreen(true)
		return
	}
	view.window.SetFullScreen(false)
	view.window.Resize(fyne.NewSize(defaultWidth, defaultHeight))
	view.window.CenterOnScreen()
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
