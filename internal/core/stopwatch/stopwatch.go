// Package stopwatch owns the countdown state machine.
//
// Every state change goes through the Controller mutex. The countdown goroutine
// only writes while the state is still Running and it is still the current
// countdown, so a late tick can never undo a pause, a stop or a newer start.
package stopwatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"highvis/internal/core/clock"
	"highvis/internal/core/model"
)

// ErrInvalidTransition indicates an intent that the current state does not allow.
// It is logged and absorbed, never returned to callers.
var ErrInvalidTransition = errors.New("invalid transition")

// Config contains runtime options for Controller.
type Config struct {
	TickInterval time.Duration
	Clock        clock.Clock
	Logger       *zerolog.Logger
}

// Controller is the countdown state machine.
type Controller struct {
	mu         sync.Mutex
	options    Config
	logger     zerolog.Logger
	state      model.State
	countdown  *countdown
	generation uint64
	events     []chan Event
	closed     bool
}

// countdown is the handle of the single in-flight countdown goroutine.
type countdown struct {
	generation uint64
	cancel     context.CancelFunc
	ticker     clock.Ticker
}

// New creates a Controller in Initial(config.InitialTime).
func New(config model.TimerConfig, options Config) *Controller {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = clock.System
	}
	logger := zerolog.Nop()
	if options.Logger != nil {
		logger = options.Logger.With().Str("component", "stopwatch").Logger()
	}

	return &Controller{
		options: options,
		logger:  logger,
		state:   model.NewInitial(config.InitialTime),
	}
}

// State returns the current state.
func (controller *Controller) State() model.State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state
}

// Subscribe registers a new observer channel. The current state is delivered
// first as an EventSnapshot. A reader that falls behind loses older events,
// never the newest one.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	ch <- Event{
		Type:     EventSnapshot,
		State:    controller.state,
		Previous: controller.state,
		At:       controller.options.Clock.Now(),
	}
	return ch
}

// StartTimer starts counting down from Initial, or resumes from Paused.
func (controller *Controller) StartTimer() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.rejectClosedLocked("start") {
		return
	}

	var remaining, initial int
	switch state := controller.state.(type) {
	case model.Initial:
		remaining, initial = state.InitialTime, state.InitialTime
	case model.Paused:
		remaining, initial = state.TimeRemaining, state.InitialTime
	default:
		controller.rejectLocked("start", "timer is already running")
		return
	}

	controller.cancelCountdownLocked()
	controller.generation++
	ctx, cancel := context.WithCancel(context.Background())
	active := &countdown{
		generation: controller.generation,
		cancel:     cancel,
		ticker:     controller.options.Clock.NewTicker(controller.options.TickInterval),
	}
	controller.countdown = active
	controller.transitionLocked(EventStarted, model.Running{TimeRemaining: remaining, InitialTime: initial})

	go controller.run(ctx, active, remaining, initial)
}

// PauseTimer suspends a Running countdown.
func (controller *Controller) PauseTimer() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.rejectClosedLocked("pause") {
		return
	}

	reduceIf(controller, "pause", EventPaused, func(running model.Running) model.State {
		controller.cancelCountdownLocked()
		return model.Paused{TimeRemaining: running.TimeRemaining, InitialTime: running.InitialTime}
	})
}

// StopTimer returns a Running or Paused timer to Initial, keeping its initial time.
func (controller *Controller) StopTimer() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.rejectClosedLocked("stop") {
		return
	}

	var initial int
	switch state := controller.state.(type) {
	case model.Running:
		initial = state.InitialTime
	case model.Paused:
		initial = state.InitialTime
	default:
		controller.rejectLocked("stop", "timer is not running or paused")
		return
	}

	controller.cancelCountdownLocked()
	controller.transitionLocked(EventStopped, model.Initial{InitialTime: initial})
}

// SetInitialTime replaces the countdown length while the timer is Initial.
func (controller *Controller) SetInitialTime(seconds int) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.rejectClosedLocked("set initial time") {
		return
	}
	if seconds <= 0 {
		controller.rejectLocked("set initial time", fmt.Sprintf("%d is not a positive duration", seconds))
		return
	}

	reduceIf(controller, "set initial time", EventInitialTimeChanged, func(model.Initial) model.State {
		return model.Initial{InitialTime: seconds}
	})
}

// Close cancels any countdown and closes observers. Later intents are ignored.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	controller.cancelCountdownLocked()
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (controller *Controller) run(ctx context.Context, active *countdown, remaining, initial int) {
	counter := remaining
	for counter > 0 {
		select {
		case <-ctx.Done():
			return
		case <-active.ticker.C():
		}

		counter--
		if !controller.advance(active, EventTick, model.Running{TimeRemaining: counter, InitialTime: initial}) {
			return
		}
	}

	controller.advance(active, EventCompleted, model.Initial{InitialTime: initial})
}

// advance applies a countdown update if active is still the current countdown
// and the state is still Running.
func (controller *Controller) advance(active *countdown, eventType EventType, next model.State) bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.countdown != active {
		controller.logger.Trace().
			Uint64("generation", active.generation).
			Str("event", string(eventType)).
			Msg("stale countdown update discarded")
		return false
	}

	return reduceIf(controller, string(eventType), eventType, func(model.Running) model.State {
		if eventType == EventCompleted {
			controller.cancelCountdownLocked()
		}
		return next
	})
}

// reduceIf replaces the state with reducer(current) only if the current state
// is a T. Otherwise the intent is rejected and the state is left alone.
// The caller must hold controller.mu.
func reduceIf[T model.State](controller *Controller, intent string, eventType EventType, reducer func(T) model.State) bool {
	current, ok := controller.state.(T)
	if !ok {
		var want T
		controller.rejectLocked(intent, fmt.Sprintf("requires %s", want.Kind()))
		return false
	}
	controller.transitionLocked(eventType, reducer(current))
	return true
}

func (controller *Controller) cancelCountdownLocked() {
	if controller.countdown == nil {
		return
	}
	controller.countdown.cancel()
	controller.countdown.ticker.Stop()
	controller.countdown = nil
}

func (controller *Controller) transitionLocked(eventType EventType, next model.State) {
	previous := controller.state
	controller.state = next

	controller.logger.Trace().
		Str("event", string(eventType)).
		Stringer("from", previous).
		Stringer("to", next).
		Msg("transition")

	controller.emitLocked(Event{
		Type:     eventType,
		State:    next,
		Previous: previous,
		At:       controller.options.Clock.Now(),
	})
}

func (controller *Controller) rejectLocked(intent, reason string) {
	err := fmt.Errorf("%w: cannot %s from %s: %s", ErrInvalidTransition, intent, controller.state, reason)
	controller.logger.Debug().Err(err).Str("intent", intent).Msg("intent ignored")
}

func (controller *Controller) rejectClosedLocked(intent string) bool {
	if !controller.closed {
		return false
	}
	controller.rejectLocked(intent, "controller is closed")
	return true
}

// emitLocked delivers the event without blocking. When a subscriber buffer is
// full the oldest pending event is dropped to make room.
func (controller *Controller) emitLocked(event Event) {
	for _, ch := range controller.events {
		select {
		case ch <- event:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
}
