// Package display derives what every presentation layer shows for a timer state.
package display

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"highvis/internal/core/model"
)

// MaxSeconds is the longest countdown the inputs accept (99:59:59).
const MaxSeconds = 99*3600 + 59*60 + 59

// ErrNotANumber indicates typed text that is not a whole number of seconds.
var ErrNotANumber = errors.New("not a whole number of seconds")

// Action is the primary button action for a state.
type Action string

const (
	ActionStart  Action = "Start"
	ActionPause  Action = "Pause"
	ActionResume Action = "Resume"
)

// Controls describes which controls a UI enables for a state.
type Controls struct {
	Primary       Action
	StopEnabled   bool
	ChangeEnabled bool
}

// Seconds returns the number shown on screen: the remaining time, or the
// initial time while the timer is Initial.
func Seconds(state model.State) int {
	switch state := state.(type) {
	case model.Initial:
		return state.InitialTime
	case model.Running:
		return state.TimeRemaining
	case model.Paused:
		return state.TimeRemaining
	}
	return 0
}

// RemainingText renders Seconds as a plain number.
func RemainingText(state model.State) string {
	return strconv.Itoa(Seconds(state))
}

// Clock renders Seconds as MM:SS, or H:MM:SS past an hour.
func Clock(state model.State) string {
	seconds := Seconds(state)
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := seconds / 60 % 60
	seconds = seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Progress returns timeRemaining/initialTime, or 0 while Initial.
func Progress(state model.State) float64 {
	var remaining, initial int
	switch state := state.(type) {
	case model.Running:
		remaining, initial = state.TimeRemaining, state.InitialTime
	case model.Paused:
		remaining, initial = state.TimeRemaining, state.InitialTime
	default:
		return 0
	}
	if initial <= 0 {
		return 0
	}
	progress := float64(remaining) / float64(initial)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// ControlsFor returns the control layout for state.
func ControlsFor(state model.State) Controls {
	switch state.(type) {
	case model.Running:
		return Controls{Primary: ActionPause, StopEnabled: true}
	case model.Paused:
		return Controls{Primary: ActionResume, StopEnabled: true}
	default:
		return Controls{Primary: ActionStart, ChangeEnabled: true}
	}
}

// Status is a short lowercase description, e.g. "running 00:39".
func Status(state model.State) string {
	return fmt.Sprintf("%s %s", state.Kind(), Clock(state))
}

// ParseSeconds validates typed seconds, clamping into [1, MaxSeconds].
func ParseSeconds(text string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, ErrNotANumber)
	}
	if value < 1 {
		return 1, nil
	}
	if value > MaxSeconds {
		return MaxSeconds, nil
	}
	return value, nil
}
