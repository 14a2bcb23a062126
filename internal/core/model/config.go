package model

// TimerConfig contains runtime settings for the stopwatch controller.
type TimerConfig struct {
	// InitialTime is the starting countdown length in seconds.
	InitialTime int
}
