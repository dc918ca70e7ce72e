package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hubastard/strata/engine/colors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config for the engine run.
type Config struct {
	Title      string       `toml:"title" yaml:"title"`
	Width      int          `toml:"width" yaml:"width"`
	Height     int          `toml:"height" yaml:"height"`
	VSync      bool         `toml:"vsync" yaml:"vsync"`
	ClearColor colors.Color `toml:"clear_color" yaml:"clear_color"` // RGBA
	LogLevel   string       `toml:"log_level" yaml:"log_level"`
	// HotReload recompiles shaders when their source files change on disk.
	HotReload bool `toml:"hot_reload" yaml:"hot_reload"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "strata",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.Midnight,
		LogLevel:   "info",
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidConfig)
	}
	return nil
}

func (c Config) WindowProps() WindowProps {
	return WindowProps{Title: c.Title, Width: c.Width, Height: c.Height, VSync: c.VSync}
}

// LoadConfig reads a .toml, .yaml or .yml file on top of DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(filepath.Ext(path), data)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data in the format named by ext (".toml", ".yaml", ".yml").
func ParseConfig(ext string, data []byte) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedConfig, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
