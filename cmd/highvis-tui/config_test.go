package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCLIConfigDefaults(t *testing.T) {
	cfg, err := loadCLIConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.InitialSeconds)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.LogFile)
}

func TestLoadCLIConfigReadsSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_seconds: 75\nfullscreen: true\nlog_level: debug\n"), 0o644))

	cfg, err := loadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.InitialSeconds)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadCLIConfigEnvOverride(t *testing.T) {
	t.Setenv("HIGHVIS_INITIAL_SECONDS", "120")

	cfg, err := loadCLIConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.InitialSeconds)
}

func TestLoadCLIConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_seconds: [1\n"), 0o644))

	_, err := loadCLIConfig(path)
	assert.Error(t, err)
}
