package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/asteroids/input"
)

// Config is the game configuration loaded from YAML over DefaultConfig
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// FrameRate caps frames per second, 0 runs uncapped
	FrameRate int `yaml:"frame_rate"`

	World WorldConfig `yaml:"world"`
	Spawn SpawnConfig `yaml:"spawn"`
	Audio AudioConfig `yaml:"audio"`
	Input InputConfig `yaml:"input"`

	// Debug enables the debug material and HUD counters
	Debug bool `yaml:"debug"`
}

// WorldConfig bounds the physics world
type WorldConfig struct {
	Min  [3]float32 `yaml:"min"`
	Max  [3]float32 `yaml:"max"`
	Wrap bool       `yaml:"wrap"`
}

// SpawnConfig paces the asteroid spawner
type SpawnConfig struct {
	Interval     time.Duration `yaml:"interval"`
	MaxAsteroids int           `yaml:"max_asteroids"`
	Seed         int64         `yaml:"seed"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"`
}

type InputConfig struct {
	// HoldWindow is how long a key counts as held after its last press event
	HoldWindow time.Duration `yaml:"hold_window"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		Title:     "Asteroids",
		Width:     1280,
		Height:    720,
		FrameRate: 60,
		World: WorldConfig{
			Min:  [3]float32{-9, -5, -1},
			Max:  [3]float32{9, 5, 1},
			Wrap: true,
		},
		Spawn: SpawnConfig{
			Interval:     500 * time.Millisecond,
			MaxAsteroids: 32,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 0.5,
		},
		Input: InputConfig{
			HoldWindow: input.DefaultHoldWindow,
		},
	}
}

// LoadConfig reads a YAML file over the defaults
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return ParseConfig(f)
}

// ParseConfig decodes YAML from r over the defaults; unknown keys are rejected
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Title == "" {
		return errors.New("config: title must not be empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return fmt.Errorf("config: negative frame_rate %d", c.FrameRate)
	}
	for i := range 2 {
		if c.World.Min[i] >= c.World.Max[i] {
			return fmt.Errorf("config: world axis %d min %.2f not below max %.2f", i, c.World.Min[i], c.World.Max[i])
		}
	}
	if c.World.Min[2] > c.World.Max[2] {
		return fmt.Errorf("config: world axis 2 min %.2f above max %.2f", c.World.Min[2], c.World.Max[2])
	}
	if c.Spawn.MaxAsteroids < 0 {
		return fmt.Errorf("config: negative max_asteroids %d", c.Spawn.MaxAsteroids)
	}
	if c.Spawn.MaxAsteroids > 0 && c.Spawn.Interval <= 0 {
		return fmt.Errorf("config: spawn interval must be positive, got %s", c.Spawn.Interval)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("config: master_volume %.2f outside [0,1]", c.Audio.MasterVolume)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: invalid sample_rate %d", c.Audio.SampleRate)
	}
	if c.Input.HoldWindow < 0 {
		return fmt.Errorf("config: negative hold_window %s", c.Input.HoldWindow)
	}
	return nil
}
