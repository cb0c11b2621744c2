// Package config loads the fixed session dimensions and host settings
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/shapeboard/placement"
)

// ErrInvalid is returned for configuration values outside their domain
var ErrInvalid = errors.New("invalid config")

// DefaultPath is the config location used when -config is not given
const DefaultPath = "~/.config/shapeboard/config.toml"

// Defaults
const (
	DefaultEditHeight  = 5
	DefaultEditWidth   = 5
	DefaultBoardHeight = 12
	DefaultBoardWidth  = 20
)

// Config is fixed for the lifetime of a session
type Config struct {
	EditHeight  int `toml:"edit_height" yaml:"edit_height"`
	EditWidth   int `toml:"edit_width" yaml:"edit_width"`
	BoardHeight int `toml:"board_height" yaml:"board_height"`
	BoardWidth  int `toml:"board_width" yaml:"board_width"`

	// Placement is "clip" (default) or "reject"
	Placement string `toml:"placement" yaml:"placement"`

	Sound    bool   `toml:"sound" yaml:"sound"`
	LogFile  string `toml:"log_file" yaml:"log_file"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		EditHeight:  DefaultEditHeight,
		EditWidth:   DefaultEditWidth,
		BoardHeight: DefaultBoardHeight,
		BoardWidth:  DefaultBoardWidth,
		Placement:   placement.PolicyClip.String(),
		LogLevel:    "info",
	}
}

// Load reads path over the defaults; a missing file yields the defaults
// The format is chosen by extension: .toml, .yaml or .yml
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("expand %s: %w", path, err)
	}

	data, err := os.ReadFile(expanded)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", expanded, err)
	}

	if err := Decode(data, filepath.Ext(expanded), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", expanded, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", expanded, err)
	}
	return cfg, nil
}

// Decode unmarshals data in the format named by ext into cfg
func Decode(data []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml", "":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("decode toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format %q: %w", ext, ErrInvalid)
	}
	return nil
}

// Validate checks dimensions are positive and names resolve
func (c Config) Validate() error {
	dims := []struct {
		name string
		v    int
	}{
		{"edit_height", c.EditHeight},
		{"edit_width", c.EditWidth},
		{"board_height", c.BoardHeight},
		{"board_width", c.BoardWidth},
	}
	for _, d := range dims {
		if d.v < 1 {
			return fmt.Errorf("%s must be positive, got %d: %w", d.name, d.v, ErrInvalid)
		}
	}

	if _, err := placement.ParsePolicy(c.Placement); err != nil {
		return fmt.Errorf("%w: %w", err, ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", err, ErrInvalid)
	}
	return nil
}

// Policy returns the placement policy; invalid names fall back to clip
func (c Config) Policy() placement.Policy {
	p, _ := placement.ParsePolicy(c.Placement)
	return p
}

// Level returns the slog level named by LogLevel, info when empty
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Marshal encodes cfg as TOML
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
