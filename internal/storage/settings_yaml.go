package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"highvis/internal/ui/display"
	"highvis/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is the preferences file inside the app config directory.
const SettingsFileName = "settings.yaml"

type yamlSettings struct {
	InitialSeconds int    `yaml:"initial_seconds"`
	Fullscreen     bool   `yaml:"fullscreen"`
	LogLevel       string `yaml:"log_level,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads preferences from an explicit path.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := ConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes preferences to an explicit path.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		InitialSeconds: settings.InitialTime,
		Fullscreen:     settings.Fullscreen,
		LogLevel:       settings.LogLevel,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ConfigPath returns <user config dir>/<appName>/settings.yaml.
func ConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, SettingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.InitialSeconds > 0 && fileData.InitialSeconds <= display.MaxSeconds {
		settings.InitialTime = fileData.InitialSeconds
	}
	if level := strings.TrimSpace(fileData.LogLevel); level != "" {
		settings.LogLevel = level
	}

	settings.Fullscreen = fileData.Fullscreen
}
