// Package tui is the terminal front end of the stopwatch.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"highvis/internal/core/model"
	"highvis/internal/core/stopwatch"
	"highvis/internal/ui/display"
)

const (
	maxProgressWidth = 60
	minProgressWidth = 10
)

// Controller is the part of stopwatch.Controller the terminal UI drives.
type Controller interface {
	State() model.State
	StartTimer()
	PauseTimer()
	StopTimer()
	SetInitialTime(seconds int)
}

// stateMsg carries a state published by the controller.
type stateMsg struct {
	state model.State
}

// eventsClosedMsg reports that the controller closed the subscription.
type eventsClosedMsg struct{}

// Model is the bubbletea model rendering one stopwatch.
type Model struct {
	controller Controller
	events     <-chan stopwatch.Event
	state      model.State

	keys     KeyMap
	help     help.Model
	progress progress.Model
	input    textinput.Model

	editing bool
	err     error
	width   int
}

// New creates the model. events may be nil, in which case the model only
// refreshes after its own intents.
func New(controller Controller, events <-chan stopwatch.Event) Model {
	input := textinput.New()
	input.Placeholder = "seconds"
	input.CharLimit = 6
	input.Width = 8
	input.Prompt = "new time: "

	bar := progress.New(progress.WithSolidFill(string(highVisYellow)), progress.WithoutPercentage())
	bar.Width = maxProgressWidth

	return Model{
		controller: controller,
		events:     events,
		state:      controller.State(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		progress:   bar,
		input:      input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan stopwatch.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return stateMsg{state: event.State}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = clampWidth(msg.Width - 8)
		return m, nil

	case stateMsg:
		m.applyState(msg.state)
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Toggle):
		if display.ControlsFor(m.state).Primary == display.ActionPause {
			m.controller.PauseTimer()
		} else {
			m.controller.StartTimer()
		}
		m.applyState(m.controller.State())
	case key.Matches(msg, m.keys.Stop):
		if display.ControlsFor(m.state).StopEnabled {
			m.controller.StopTimer()
			m.applyState(m.controller.State())
		}
	case key.Matches(msg, m.keys.Change):
		if display.ControlsFor(m.state).ChangeEnabled {
			m.err = nil
			m.editing = true
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		seconds, err := display.ParseSeconds(m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.stopEditing()
		m.controller.SetInitialTime(seconds)
		m.applyState(m.controller.State())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) applyState(state model.State) {
	m.state = state
	if m.editing && !display.ControlsFor(state).ChangeEnabled {
		m.stopEditing()
	}
}

func (m *Model) stopEditing() {
	m.editing = false
	m.err = nil
	m.input.Blur()
	m.input.SetValue("")
}

// View implements tea.Model.
func (m Model) View() string {
	controls := display.ControlsFor(m.state)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("HighVis Stopwatch"),
		statusStyle.Render("  "+display.Status(m.state)),
	)

	seconds := secondsStyle
	if m.state.Kind() == model.KindPaused {
		seconds = pausedSecondsStyle
	}

	lines := []string{
		header,
		"",
		seconds.Render(display.RemainingText(m.state)),
		"",
		m.progress.ViewAs(display.Progress(m.state)) + " " + display.Clock(m.state),
		"",
		statusStyle.Render(fmt.Sprintf("space: %s", strings.ToLower(string(controls.Primary)))),
	}

	if m.editing {
		lines = append(lines, "", m.input.View())
		if m.err != nil {
			lines = append(lines, errorStyle.Render(m.err.Error()))
		}
	}

	lines = append(lines, "", m.help.View(m.keys))
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// State returns the state the model last rendered.
func (m Model) State() model.State {
	return m.state
}

// Editing reports whether the time entry is open.
func (m Model) Editing() bool {
	return m.editing
}

func clampWidth(width int) int {
	if width > maxProgressWidth {
		return maxProgressWidth
	}
	if width < minProgressWidth {
		return minProgressWidth
	}
	return width
}
