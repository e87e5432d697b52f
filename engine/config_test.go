package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(`
title: Rocks
width: 800
spawn:
  interval: 250ms
  max_asteroids: 8
audio:
  enabled: false
`))
	require.NoError(t, err)
	assert.Equal(t, "Rocks", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 720, cfg.Height, "unset keys keep defaults")
	assert.Equal(t, 250*time.Millisecond, cfg.Spawn.Interval)
	assert.Equal(t, 8, cfg.Spawn.MaxAsteroids)
	assert.False(t, cfg.Audio.Enabled)
	assert.True(t, cfg.World.Wrap)
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	_, err := ParseConfig(strings.NewReader("colour: red\n"))
	assert.Error(t, err)
}

func TestParseConfigValidates(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero height", "height: 0"},
		{"inverted world", "world: {min: [1, -5, -1], max: [-1, 5, 1]}"},
		{"bad volume", "audio: {master_volume: 2}"},
		{"no interval", "spawn: {interval: 0s, max_asteroids: 4}"},
		{"empty title", `title: ""`},
		{"negative frame rate", "frame_rate: -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
