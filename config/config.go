// Package config loads the gridsolve runner configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Run modes. Development logs human-readable text, production logs JSON.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// DefaultTimeout bounds a whole run when the file sets none.
const DefaultTimeout = time.Minute

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Duration accepts either a Go duration string ("1m30s") or a number of
// seconds.
type Duration struct{ time.Duration }

// MarshalYAML writes d as a duration string.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML accepts an integer or float number of seconds, or a string
// in time.ParseDuration form.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	switch value := v.(type) {
	case int:
		d.Duration = time.Duration(value) * time.Second
		return nil
	case float64:
		d.Duration = time.Duration(value * float64(time.Second))
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		return err
	default:
		return fmt.Errorf("invalid duration %q", node.Value)
	}
}

// Config is the gridsolve runner configuration.
//
// Days lists the days to solve; empty means every registered day. Workers
// bounds how many days run at once and Timeout bounds the whole run.
type Config struct {
	Mode     string   `yaml:"mode"`
	LogLevel string   `yaml:"log_level"`
	InputDir string   `yaml:"input_dir"`
	Days     []int    `yaml:"days,omitempty"`
	Workers  int      `yaml:"workers"`
	Timeout  Duration `yaml:"timeout"`
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return Parse(b)
}

// Parse decodes YAML over the defaults, then normalizes and validates.
func Parse(b []byte) (Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		Mode:     ModeDevelopment,
		LogLevel: "info",
		InputDir: "inputs",
		Workers:  runtime.GOMAXPROCS(0),
		Timeout:  Duration{DefaultTimeout},
	}
}

// Normalize fills blanks with defaults and sorts and dedupes Days.
func (c *Config) Normalize() {
	if c == nil {
		return
	}
	d := defaults()
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	if c.Mode == "" {
		c.Mode = d.Mode
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if strings.TrimSpace(c.InputDir) == "" {
		c.InputDir = d.InputDir
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.Timeout.Duration <= 0 {
		c.Timeout = d.Timeout
	}
	slices.Sort(c.Days)
	c.Days = slices.Compact(c.Days)
}

// Validate reports ErrInvalid for an unknown mode or log level, or a day
// outside 1..25.
func (c Config) Validate() error {
	if c.Mode != ModeDevelopment && c.Mode != ModeProduction {
		return fmt.Errorf("%w: mode %q", ErrInvalid, c.Mode)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	for _, d := range c.Days {
		if d < 1 || d > 25 {
			return fmt.Errorf("%w: day %d", ErrInvalid, d)
		}
	}
	return nil
}

// Level returns the parsed log level, Info if it does not parse.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Fields returns the configuration as logrus fields for startup logging.
func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":      c.Mode,
		"log_level": c.LogLevel,
		"input_dir": c.InputDir,
		"days":      c.Days,
		"workers":   c.Workers,
		"timeout":   c.Timeout.String(),
	}
}

// Production reports whether the runner is in production mode.
func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

// Development reports whether the runner is in any non-production mode.
func (c Config) Development() bool {
	return c.Mode != ModeProduction
}
