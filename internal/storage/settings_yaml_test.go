package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highvis/internal/ui/preferences"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "HighVis", SettingsFileName)
	want := preferences.Settings{InitialTime: 90, Fullscreen: true, LogLevel: "debug"}

	require.NoError(t, SaveSettingsFile(path, want))

	got, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("initial_seconds: -4\nfullscreen: true\n"), 0o644))

	settings, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 40, settings.InitialTime)
	assert.True(t, settings.Fullscreen)
	assert.Equal(t, "info", settings.LogLevel)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("initial_seconds: [oops"), 0o644))

	settings, err := LoadSettingsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}
