// Package config loads masonry settings from TOML files.
//
// A configuration file may override any part of the layout pipeline: the
// breakpoint table, the weighted height set, the sampling policy, clamping,
// the seed and the initial width. Every key is optional; omitted keys keep
// the pipeline defaults.
//
//	policy = "weighted"
//	clamp = true
//	seed = 0
//	preset = "default"   # or "legacy"
//
//	[[breakpoints]]
//	min_width = 1440
//	columns = 7
//
//	[[heights]]
//	value = 30
//	weight = 3
//
// Explicit [[breakpoints]] entries take precedence over preset.
package config

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/masonry/pkg/core/breakpoint"
	"github.com/matzehuels/masonry/pkg/core/height"
	errs "github.com/matzehuels/masonry/pkg/errors"
	"github.com/matzehuels/masonry/pkg/pipeline"
)

const (
	appName  = "masonry"
	fileName = "config.toml"
)

// Breakpoint presets.
const (
	PresetDefault = "default"
	PresetLegacy  = "legacy"
)

// Config mirrors the TOML file layout.
type Config struct {
	Preset      string                  `toml:"preset"`
	Policy      string                  `toml:"policy"`
	Clamp       *bool                   `toml:"clamp"`
	Seed        uint64                  `toml:"seed"`
	Width       *float64                `toml:"width"`
	Breakpoints []breakpoint.Breakpoint `toml:"breakpoints"`
	Heights     []height.Weighted       `toml:"heights"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Preset: PresetDefault}
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/masonry/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errs.Wrap(errs.GetCode(err), err, "load config %s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// LoadDefault loads the file at DefaultPath. A missing file yields Default.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errs.Is(err, errs.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes and validates TOML data. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration without building a pipeline.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Preset) {
	case "", PresetDefault, PresetLegacy:
	default:
		return errs.New(errs.ErrCodeInvalidConfig,
			"invalid preset: %q (must be one of: %s, %s)", c.Preset, PresetDefault, PresetLegacy)
	}
	if c.Width != nil {
		if err := errs.ValidateWidth(*c.Width); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "width")
		}
	}
	opts := c.Options()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	_, _, err := opts.Tables()
	return err
}

// Options converts the configuration into pipeline options.
func (c *Config) Options() pipeline.Options {
	opts := pipeline.Options{
		Policy:      c.Policy,
		Clamp:       c.Clamp,
		Seed:        c.Seed,
		Width:       c.Width,
		Breakpoints: c.Breakpoints,
		Heights:     c.Heights,
	}
	if len(opts.Breakpoints) == 0 && strings.EqualFold(c.Preset, PresetLegacy) {
		opts.Breakpoints = breakpoint.Legacy().Entries()
	}
	return opts
}

// Encode writes c as TOML, filling defaults so the output is a complete,
// editable configuration.
func (c *Config) Encode(w io.Writer) error {
	opts := c.Options()
	opts.SetDefaults()
	out := Config{
		Preset:      c.Preset,
		Policy:      opts.Policy,
		Clamp:       opts.Clamp,
		Seed:        opts.Seed,
		Width:       opts.Width,
		Breakpoints: opts.Breakpoints,
		Heights:     opts.Heights,
	}
	if out.Preset == "" {
		out.Preset = PresetDefault
	}
	return toml.NewEncoder(w).Encode(out)
}
