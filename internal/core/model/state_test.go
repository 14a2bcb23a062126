package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInitialDefaults(t *testing.T) {
	assert.Equal(t, Initial{InitialTime: 40}, NewInitial(0))
	assert.Equal(t, Initial{InitialTime: 40}, NewInitial(-3))
	assert.Equal(t, Initial{InitialTime: 12}, NewInitial(12))
}

func TestStateEqualityIsStructural(t *testing.T) {
	var a State = Running{TimeRemaining: 5, InitialTime: 10}
	var b State = Running{TimeRemaining: 5, InitialTime: 10}
	var c State = Paused{TimeRemaining: 5, InitialTime: 10}

	assert.True(t, a == b)
	assert.False(t, a == c)
	assert.NotEqual(t, State(Initial{InitialTime: 10}), State(Initial{InitialTime: 11}))
}

func TestStateKindAndString(t *testing.T) {
	cases := []struct {
		state State
		kind  Kind
		text  string
	}{
		{Initial{InitialTime: 40}, KindInitial, "Initial(40)"},
		{Running{TimeRemaining: 39, InitialTime: 40}, KindRunning, "Running(39/40)"},
		{Paused{TimeRemaining: 3, InitialTime: 10}, KindPaused, "Paused(3/10)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.state.Kind())
		assert.Equal(t, tc.text, tc.state.String())
	}
}
