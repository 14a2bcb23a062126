package clock

import (
	"sync"
	"time"
)

// DefaultDeliveryTimeout bounds how long ManualTicker.Tick waits for a receiver.
const DefaultDeliveryTimeout = time.Second

// Manual is a Clock whose tickers only fire when told to.
type Manual struct {
	mu              sync.Mutex
	now             time.Time
	tickers         []*ManualTicker
	deliveryTimeout time.Duration
}

// NewManual creates a manual clock starting at now.
func NewManual(now time.Time) *Manual {
	return &Manual{now: now, deliveryTimeout: DefaultDeliveryTimeout}
}

// SetDeliveryTimeout changes how long Tick waits for a listener.
func (manual *Manual) SetDeliveryTimeout(timeout time.Duration) {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.deliveryTimeout = timeout
}

// NewTicker implements Clock.
func (manual *Manual) NewTicker(interval time.Duration) Ticker {
	manual.mu.Lock()
	defer manual.mu.Unlock()

	ticker := &ManualTicker{
		clock:    manual,
		interval: interval,
		ch:       make(chan time.Time),
		done:     make(chan struct{}),
	}
	manual.tickers = append(manual.tickers, ticker)
	return ticker
}

// Now implements Clock.
func (manual *Manual) Now() time.Time {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// Tickers returns every ticker created so far, oldest first.
func (manual *Manual) Tickers() []*ManualTicker {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return append([]*ManualTicker(nil), manual.tickers...)
}

// Latest returns the most recently created ticker, or nil.
func (manual *Manual) Latest() *ManualTicker {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	if len(manual.tickers) == 0 {
		return nil
	}
	return manual.tickers[len(manual.tickers)-1]
}

func (manual *Manual) advance(delta time.Duration) (time.Time, time.Duration) {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.now = manual.now.Add(delta)
	return manual.now, manual.deliveryTimeout
}

// ManualTicker is a Ticker fired by Tick.
type ManualTicker struct {
	clock    *Manual
	interval time.Duration
	ch       chan time.Time
	done     chan struct{}
	stopOnce sync.Once
}

// C implements Ticker.
func (ticker *ManualTicker) C() <-chan time.Time {
	return ticker.ch
}

// Stop implements Ticker. It is safe to call more than once.
func (ticker *ManualTicker) Stop() {
	ticker.stopOnce.Do(func() {
		close(ticker.done)
	})
}

// Stopped reports whether Stop has been called.
func (ticker *ManualTicker) Stopped() bool {
	select {
	case <-ticker.done:
		return true
	default:
		return false
	}
}

// Tick advances the clock by one interval and hands the tick to the listener.
// It returns false if the ticker is stopped or nobody received the tick in time.
func (ticker *ManualTicker) Tick() bool {
	if ticker.Stopped() {
		return false
	}
	now, timeout := ticker.clock.advance(ticker.interval)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ticker.ch <- now:
		return true
	case <-ticker.done:
		return false
	case <-timer.C:
		return false
	}
}
