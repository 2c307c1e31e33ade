// Package config loads the optional aria.yaml tuning file.
//
// The file is entirely optional: a missing file yields a zero Config, and
// every zero field resolves to the built-in default, so applications only
// write the knobs they want to change:
//
//	gestures:
//	  slop: 12
//	  min_distance: 40
//	  max_duration_ms: 250
//	navigation:
//	  wrap: false
//	debug:
//	  verbose: true
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-aria/aria/pkg/gestures"
)

// FileName is the tuning file looked up by LoadOptional.
const FileName = "aria.yaml"

// Config represents the optional aria.yaml configuration.
type Config struct {
	Gestures   GestureConfig    `yaml:"gestures"`
	Navigation NavigationConfig `yaml:"navigation"`
	Debug      DebugConfig      `yaml:"debug"`
}

// GestureConfig tunes swipe detection thresholds.
type GestureConfig struct {
	Slop          float64 `yaml:"slop,omitempty"`
	MinDistance   float64 `yaml:"min_distance,omitempty"`
	MaxDurationMS int     `yaml:"max_duration_ms,omitempty"`
	MinVelocity   float64 `yaml:"min_velocity,omitempty"`
}

// NavigationConfig tunes keyboard navigation defaults.
type NavigationConfig struct {
	// Wrap sets the default wrap policy for roving navigation.
	// Unset means wrap.
	Wrap *bool `yaml:"wrap,omitempty"`
}

// DebugConfig tunes diagnostic output.
type DebugConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// LoadOptional reads aria.yaml from dir if present. A missing file is not an
// error and returns a zero Config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// SwipeConfig resolves the gesture section to tracker thresholds; zero
// fields fall through to the gestures package defaults.
func (c *Config) SwipeConfig() gestures.Config {
	return gestures.Config{
		Slop:        c.Gestures.Slop,
		MinDistance: c.Gestures.MinDistance,
		MaxDuration: time.Duration(c.Gestures.MaxDurationMS) * time.Millisecond,
		MinVelocity: c.Gestures.MinVelocity,
	}
}

// WrapDefault resolves the navigation wrap policy. Wrapping is the default.
func (c *Config) WrapDefault() bool {
	if c.Navigation.Wrap == nil {
		return true
	}
	return *c.Navigation.Wrap
}
