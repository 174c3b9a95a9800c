// Package config loads generation settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/maze"
)

var (
	// ErrUnsupportedFormat indicates a config file extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	// ErrInvalid indicates a config value out of range.
	ErrInvalid = errors.New("config: invalid value")
)

// Output formats for the generate command.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatFinal = "final"
)

// Config holds one generation run's settings.
type Config struct {
	Algorithm  string        `toml:"algorithm" yaml:"algorithm"`
	Width      int           `toml:"width" yaml:"width"`
	Height     int           `toml:"height" yaml:"height"`
	Steps      int           `toml:"steps" yaml:"steps"`
	StepFactor int           `toml:"step_factor" yaml:"step_factor"`
	Seed       int64         `toml:"seed" yaml:"seed"`
	Delay      time.Duration `toml:"delay" yaml:"delay"`
	Format     string        `toml:"format" yaml:"format"`
	Record     string        `toml:"record" yaml:"record"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() Config {
	return Config{
		Algorithm:  string(maze.KindDFS),
		Width:      21,
		Height:     21,
		Steps:      0,
		StepFactor: maze.DefaultStepFactor,
		Seed:       0,
		Delay:      20 * time.Millisecond,
		Format:     FormatFinal,
	}
}

// Load reads path over Default(). The format follows the file extension.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := Parse(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data into cfg. ext selects the decoder (".toml", ".yaml", ".yml").
func Parse(data []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

// Kind resolves the configured algorithm.
func (c Config) Kind() (maze.Kind, error) {
	return maze.ParseKind(c.Algorithm)
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if _, err := c.Kind(); err != nil {
		return err
	}
	if c.Width < maze.MinSize || c.Height < maze.MinSize {
		return fmt.Errorf("%w: size %dx%d below %d", ErrInvalid, c.Width, c.Height, maze.MinSize)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps %d", ErrInvalid, c.Steps)
	}
	if c.StepFactor < 1 {
		return fmt.Errorf("%w: step_factor %d", ErrInvalid, c.StepFactor)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay %s", ErrInvalid, c.Delay)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML, FormatFinal:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	return nil
}

// Options converts the settings into generator options.
func (c Config) Options() []maze.Option {
	return []maze.Option{
		maze.WithSeed(c.Seed),
		maze.WithSteps(c.Steps),
		maze.WithStepFactor(c.StepFactor),
	}
}
