// Package config provides the run configuration for the tape machine.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sarchlab/bfvm/api"
	"github.com/sarchlab/bfvm/core"
	"gopkg.in/yaml.v3"
)

// Config is loaded from a YAML file such as
//
//	eof: zero
//	log_level: debug
//	log_file: run.log
type Config struct {
	// EOF is the end-of-input policy: fail, zero or keep.
	EOF string `yaml:"eof"`
	// LogLevel is one of debug, info, trace, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFile receives the JSON log. Empty means stderr.
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		EOF:      core.EOFFail.String(),
		LogLevel: "warn",
	}
}

// Load reads a YAML configuration file. Missing keys keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field can be converted.
func (c Config) Validate() error {
	if _, err := c.EOFPolicy(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// EOFPolicy converts the eof field.
func (c Config) EOFPolicy() (core.EOFPolicy, error) {
	return core.ParseEOFPolicy(c.EOF)
}

// Level converts the log_level field.
func (c Config) Level() (slog.Level, error) {
	if strings.EqualFold(c.LogLevel, "trace") {
		return core.LevelTrace, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}

// DriverBuilder returns a driver builder set up from the configuration.
func (c Config) DriverBuilder() (api.DriverBuilder, error) {
	eof, err := c.EOFPolicy()
	if err != nil {
		return api.DriverBuilder{}, err
	}
	return api.DriverBuilder{}.WithEOFPolicy(eof), nil
}
