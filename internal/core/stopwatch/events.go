package stopwatch

import (
	"time"

	"highvis/internal/core/model"
)

// EventType defines the type of Controller event.
type EventType string

const (
	EventSnapshot           EventType = "snapshot"
	EventStarted            EventType = "started"
	EventPaused             EventType = "paused"
	EventStopped            EventType = "stopped"
	EventTick               EventType = "tick"
	EventCompleted          EventType = "completed"
	EventInitialTimeChanged EventType = "initial_time_changed"
)

// Event represents a Controller transition for observers.
type Event struct {
	Type     EventType
	State    model.State
	Previous model.State
	At       time.Time
}
