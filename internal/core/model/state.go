package model

import "fmt"

// DefaultInitialTime is the countdown length, in seconds, used when none is configured.
const DefaultInitialTime = 40

// Kind identifies the active State variant.
type Kind string

const (
	KindInitial Kind = "initial"
	KindRunning Kind = "running"
	KindPaused  Kind = "paused"
)

// State is the closed set of timer states: Initial, Running or Paused.
// Variants are comparable values, so == is structural equality.
type State interface {
	Kind() Kind
	fmt.Stringer

	sealed()
}

// Initial is a configured timer that is not counting down.
type Initial struct {
	InitialTime int
}

// Running is a timer that is actively counting down.
type Running struct {
	TimeRemaining int
	InitialTime   int
}

// Paused is a countdown suspended mid-flight.
type Paused struct {
	TimeRemaining int
	InitialTime   int
}

// NewInitial returns Initial(initialTime), falling back to the default for non-positive values.
func NewInitial(initialTime int) Initial {
	if initialTime <= 0 {
		initialTime = DefaultInitialTime
	}
	return Initial{InitialTime: initialTime}
}

func (Initial) Kind() Kind { return KindInitial }
func (Running) Kind() Kind { return KindRunning }
func (Paused) Kind() Kind  { return KindPaused }

func (state Initial) String() string {
	return fmt.Sprintf("Initial(%d)", state.InitialTime)
}

func (state Running) String() string {
	return fmt.Sprintf("Running(%d/%d)", state.TimeRemaining, state.InitialTime)
}

func (state Paused) String() string {
	return fmt.Sprintf("Paused(%d/%d)", state.TimeRemaining, state.InitialTime)
}

func (Initial) sealed() {}
func (Running) sealed() {}
func (Paused) sealed()  {}
