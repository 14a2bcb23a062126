// Package clock abstracts the tick source of the countdown so tests can drive it by hand.
package clock

import "time"

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock provides time-related operations.
type Clock interface {
	NewTicker(interval time.Duration) Ticker
	Now() time.Time
}

// System is the Clock backed by the standard library.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTicker(interval time.Duration) Ticker {
	return systemTicker{ticker: time.NewTicker(interval)}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type systemTicker struct {
	ticker *time.Ticker
}

func (ticker systemTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker systemTicker) Stop() {
	ticker.ticker.Stop()
}
