// SPDX-License-Identifier: EPL-2.0

// Package config provides YAML-based configuration loading for tapepbx.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	// Baud is the playback rate the shared settings start with. Encoders
	// with a fixed rate override it for the length of their session.
	Baud int `mapstructure:"baud"`

	// Render controls how the signal is written to audio files.
	Render RenderConfig `mapstructure:"render"`

	// Log holds logging configuration
	Log LogConfig `mapstructure:"log"`
}

// RenderConfig controls audio output.
type RenderConfig struct {
	SampleRate int     `mapstructure:"sample_rate"`
	BitDepth   int     `mapstructure:"bit_depth"`
	Amplitude  float32 `mapstructure:"amplitude"`
	// Format: wav, aiff, or empty to pick by output file extension
	Format string `mapstructure:"format"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format: console or json
	Format string `mapstructure:"format"`
	// Outputs: list of outputs: stdout, stderr, or file paths
	Outputs []string `mapstructure:"outputs"`

	// Rotation controls file rotation when writing to files
	Rotation RotationConfig `mapstructure:"rotation"`
	// Development toggles development-friendly logging options
	Development bool `mapstructure:"development"`
}

// RotationConfig controls log file rotation for file outputs.
type RotationConfig struct {
	Enable     bool   `mapstructure:"enable"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Baud: 3850,
		Render: RenderConfig{
			SampleRate: 44100,
			BitDepth:   16,
			Amplitude:  0.75,
		},
		Log: LogConfig{
			Level:   "info",
			Format:  "console",
			Outputs: []string{"stderr"},
			Rotation: RotationConfig{
				Filename:   "logs/tapepbx.log",
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 28,
			},
		},
	}
}

// Load reads configuration from path (if non-empty), otherwise it searches
// the usual locations. Environment variables use the prefix TAPEPBX with
// `.` and `-` replaced by `_`, e.g. TAPEPBX_RENDER_SAMPLE_RATE=48000.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TAPEPBX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// seed defaults for viper so env-only configs work
	v.SetDefault("baud", cfg.Baud)
	v.SetDefault("render.sample_rate", cfg.Render.SampleRate)
	v.SetDefault("render.bit_depth", cfg.Render.BitDepth)
	v.SetDefault("render.amplitude", cfg.Render.Amplitude)
	v.SetDefault("render.format", cfg.Render.Format)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.outputs", cfg.Log.Outputs)
	v.SetDefault("log.development", cfg.Log.Development)
	v.SetDefault("log.rotation.enable", cfg.Log.Rotation.Enable)
	v.SetDefault("log.rotation.filename", cfg.Log.Rotation.Filename)
	v.SetDefault("log.rotation.max_size_mb", cfg.Log.Rotation.MaxSizeMB)
	v.SetDefault("log.rotation.max_backups", cfg.Log.Rotation.MaxBackups)
	v.SetDefault("log.rotation.max_age_days", cfg.Log.Rotation.MaxAgeDays)
	v.SetDefault("log.rotation.compress", cfg.Log.Rotation.Compress)

	if path == "" {
		if envPath := os.Getenv("TAPEPBX_CONFIG"); envPath != "" {
			path = envPath
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("tapepbx")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tapepbx"))
		}
	}

	// Read config file if present; if not found, continue with defaults/env
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and fills in empty optional fields.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	if c.Baud <= 0 {
		return fmt.Errorf("%w: baud %d", ErrInvalid, c.Baud)
	}
	if c.Render.SampleRate <= 0 {
		return fmt.Errorf("%w: render.sample_rate %d", ErrInvalid, c.Render.SampleRate)
	}
	if c.Render.BitDepth != 16 && c.Render.BitDepth != 24 {
		return fmt.Errorf("%w: render.bit_depth %d", ErrInvalid, c.Render.BitDepth)
	}
	if c.Render.Amplitude <= 0 || c.Render.Amplitude > 1 {
		return fmt.Errorf("%w: render.amplitude %v", ErrInvalid, c.Render.Amplitude)
	}

	c.Render.Format = strings.ToLower(strings.TrimSpace(c.Render.Format))
	switch c.Render.Format {
	case "", "wav", "aiff":
	default:
		return fmt.Errorf("%w: render.format %q", ErrInvalid, c.Render.Format)
	}

	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if len(c.Log.Outputs) == 0 {
		c.Log.Outputs = []string{"stderr"}
	}
	return nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")
