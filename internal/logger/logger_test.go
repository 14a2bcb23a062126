package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel(" Debug ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	level, err = ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}

func TestNewFiltersByLevel(t *testing.T) {
	var out bytes.Buffer
	log := New(&out, zerolog.InfoLevel)

	log.Debug().Msg("hidden")
	log.Info().Str("state", "Initial(40)").Msg("ready")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "ready")
	assert.Contains(t, out.String(), "state=Initial(40)")
}

func TestOpenFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highvis.log")

	log, closer, err := OpenFile(path, zerolog.InfoLevel)
	require.NoError(t, err)
	log.Info().Msg("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}
