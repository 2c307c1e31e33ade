package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-aria/aria/pkg/gestures"
)

func writeFile(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadOptionalParsesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, `
gestures:
  slop: 12
  min_distance: 40
  max_duration_ms: 250
  min_velocity: 0.2
navigation:
  wrap: false
debug:
  verbose: true
`)

	cfg, err := LoadOptional(dir)
	require.NoError(t, err)

	assert.Equal(t, 12.0, cfg.Gestures.Slop)
	assert.Equal(t, 40.0, cfg.Gestures.MinDistance)
	assert.Equal(t, 250, cfg.Gestures.MaxDurationMS)
	assert.False(t, cfg.WrapDefault())
	assert.True(t, cfg.Debug.Verbose)
}

func TestLoadOptionalRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gestures: [not a mapping")

	_, err := LoadOptional(dir)
	assert.Error(t, err)
}

func TestSwipeConfigResolvesThresholds(t *testing.T) {
	cfg := &Config{Gestures: GestureConfig{Slop: 15, MaxDurationMS: 200}}

	sc := cfg.SwipeConfig()
	assert.Equal(t, 15.0, sc.Slop)
	assert.Equal(t, 200*time.Millisecond, sc.MaxDuration)

	// Unset fields fall through to the gesture defaults once a tracker
	// normalizes them.
	tracker := gestures.NewTracker(sc, func(gestures.Swipe) {})
	assert.Equal(t, gestures.DefaultConfig().MinDistance, tracker.Config().MinDistance)
	assert.Equal(t, 15.0, tracker.Config().Slop)
}

func TestWrapDefaultsToTrue(t *testing.T) {
	cfg := &Config{}
	assert.True(t, cfg.WrapDefault())
}
