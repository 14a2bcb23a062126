package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualTickDeliversAndAdvances(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	manual := NewManual(start)
	ticker := manual.NewTicker(time.Second).(*ManualTicker)

	received := make(chan time.Time, 1)
	go func() {
		received <- <-ticker.C()
	}()

	require.True(t, ticker.Tick())
	assert.Equal(t, start.Add(time.Second), <-received)
	assert.Equal(t, start.Add(time.Second), manual.Now())
}

func TestManualTickWithoutListenerTimesOut(t *testing.T) {
	manual := NewManual(time.Time{})
	manual.SetDeliveryTimeout(10 * time.Millisecond)
	ticker := manual.NewTicker(time.Second).(*ManualTicker)

	assert.False(t, ticker.Tick())
}

func TestManualStoppedTickerRefusesTicks(t *testing.T) {
	manual := NewManual(time.Time{})
	ticker := manual.NewTicker(time.Second).(*ManualTicker)

	ticker.Stop()
	ticker.Stop()

	assert.True(t, ticker.Stopped())
	assert.False(t, ticker.Tick())
}

func TestManualTracksTickers(t *testing.T) {
	manual := NewManual(time.Time{})
	assert.Nil(t, manual.Latest())

	first := manual.NewTicker(time.Second)
	second := manual.NewTicker(time.Second)

	assert.Len(t, manual.Tickers(), 2)
	assert.Same(t, second.(*ManualTicker), manual.Latest())
	assert.Same(t, first.(*ManualTicker), manual.Tickers()[0])
}
