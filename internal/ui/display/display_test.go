package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highvis/internal/core/model"
)

func TestDerivations(t *testing.T) {
	cases := []struct {
		name     string
		state    model.State
		text     string
		clock    string
		progress float64
		controls Controls
	}{
		{
			name:     "initial",
			state:    model.Initial{InitialTime: 40},
			text:     "40",
			clock:    "00:40",
			progress: 0,
			controls: Controls{Primary: ActionStart, ChangeEnabled: true},
		},
		{
			name:     "running",
			state:    model.Running{TimeRemaining: 5, InitialTime: 10},
			text:     "5",
			clock:    "00:05",
			progress: 0.5,
			controls: Controls{Primary: ActionPause, StopEnabled: true},
		},
		{
			name:     "paused",
			state:    model.Paused{TimeRemaining: 90, InitialTime: 120},
			text:     "90",
			clock:    "01:30",
			progress: 0.75,
			controls: Controls{Primary: ActionResume, StopEnabled: true},
		},
		{
			name:     "long running",
			state:    model.Running{TimeRemaining: 3725, InitialTime: 3725},
			text:     "3725",
			clock:    "1:02:05",
			progress: 1,
			controls: Controls{Primary: ActionPause, StopEnabled: true},
		},
		{
			name:     "zero initial",
			state:    model.Running{TimeRemaining: 0, InitialTime: 0},
			text:     "0",
			clock:    "00:00",
			progress: 0,
			controls: Controls{Primary: ActionPause, StopEnabled: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.text, RemainingText(tc.state))
			assert.Equal(t, tc.clock, Clock(tc.state))
			assert.InDelta(t, tc.progress, Progress(tc.state), 1e-9)
			assert.Equal(t, tc.controls, ControlsFor(tc.state))
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "running 00:39", Status(model.Running{TimeRemaining: 39, InitialTime: 40}))
	assert.Equal(t, "initial 00:40", Status(model.Initial{InitialTime: 40}))
}

func TestParseSeconds(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"60", 60},
		{" 15 ", 15},
		{"0", 1},
		{"-20", 1},
		{"999999", MaxSeconds},
	}
	for _, tc := range cases {
		got, err := ParseSeconds(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}

	for _, input := range []string{"", "ten", "1.5", "12s"} {
		_, err := ParseSeconds(input)
		assert.ErrorIs(t, err, ErrNotANumber, input)
	}
}
