// Package config loads the game configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const appName = "ballattax"

type Config struct {
	Window  Window  `toml:"window"`
	Audio   Audio   `toml:"audio"`
	Game    Game    `toml:"game"`
	Storage Storage `toml:"storage"`
	Log     Log     `toml:"log"`
}

type Window struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
	Title      string `toml:"title"`
}

type Audio struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
}

type Game struct {
	// MaxVelocity is the player speed at full stick deflection, in viewport
	// units per second.
	MaxVelocity float64 `toml:"max_velocity"`
	// LossDelay is the pause after a missed ball before the session restarts.
	LossDelay float64 `toml:"loss_delay"`
	// Seed fixes the RNG; 0 seeds from the clock.
	Seed uint64 `toml:"seed"`
}

type Storage struct {
	// Path of the msgpack storage file. Empty keeps scores in memory only.
	Path string `toml:"path"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  640,
			Height: 480,
			Title:  "BALLATTAX",
		},
		Audio: Audio{
			Enabled:    true,
			Volume:     0.58,
			SampleRate: 44100,
		},
		Game: Game{
			MaxVelocity: 12.0,
			LossDelay:   0.5,
		},
		Storage: Storage{
			Path: filepath.Join(dir(), "storage.msgpack"),
		},
		Log: Log{Level: "info"},
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(dir(), "config.toml")
}

func dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, appName)
}

// Load reads path over the defaults. A missing file is not an error;
// found reports whether a file was read.
func Load(path string) (c Config, found bool, err error) {
	c = Default()
	if path == "" {
		path = DefaultPath()
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, false, nil
		}
		return c, false, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, true, fmt.Errorf("config %s: %w", path, err)
	}
	return c, true, nil
}

// Write encodes c to path, creating parent directories.
func Write(path string, c Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be in [0,1], got %v", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Game.MaxVelocity <= 0 {
		return fmt.Errorf("max velocity must be positive, got %v", c.Game.MaxVelocity)
	}
	if c.Game.LossDelay < 0 {
		return fmt.Errorf("loss delay must not be negative, got %v", c.Game.LossDelay)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a config log level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}
