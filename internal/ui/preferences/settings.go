package preferences

import (
	"highvis/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	InitialTime int
	Fullscreen  bool
	LogLevel    string
}

// DefaultSettings returns default settings for HighVis.
func DefaultSettings() Settings {
	return Settings{
		InitialTime: model.DefaultInitialTime,
		Fullscreen:  false,
		LogLevel:    "info",
	}
}

// TimerConfig converts settings to the controller configuration.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		InitialTime: settings.InitialTime,
	}
}
