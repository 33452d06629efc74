// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file values.
const (
	EnvLogLevel         = "SOCIALNET_LOG_LEVEL"
	EnvLogFormat        = "SOCIALNET_LOG_FORMAT"
	EnvClock            = "SOCIALNET_CLOCK"
	EnvMetricsAddr      = "SOCIALNET_METRICS_ADDR"
	EnvMetricsNamespace = "SOCIALNET_METRICS_NAMESPACE"
	EnvInput            = "SOCIALNET_INPUT"
)

// Clock modes.
const (
	ClockCounter   = "counter"
	ClockMonotonic = "monotonic"
)

// StdinPath selects standard input as the command source.
const StdinPath = "-"

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Clock   ClockConfig   `yaml:"clock"`
	Metrics MetricsConfig `yaml:"metrics"`
	Input   InputConfig   `yaml:"input"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// ClockConfig selects the source of post creation keys.
type ClockConfig struct {
	Mode string `yaml:"mode" validate:"oneof=counter monotonic"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr      string `yaml:"addr" validate:"omitempty,hostname_port"`
	Namespace string `yaml:"namespace" validate:"omitempty,max=64"`
}

// InputConfig names the command source; "-" is stdin.
type InputConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", Format: "console"},
		Clock:   ClockConfig{Mode: ClockCounter},
		Metrics: MetricsConfig{Namespace: "socialnet"},
		Input:   InputConfig{Path: StdinPath},
	}
}

// Loader applies the configuration layers. The zero value is not usable;
// construct with NewLoader.
type Loader struct {
	dotenvFiles []string
	validate    *validator.Validate
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithDotEnvFiles replaces the dotenv files read before the YAML layer.
func WithDotEnvFiles(files ...string) LoaderOption {
	return func(l *Loader) { l.dotenvFiles = files }
}

// NewLoader returns a Loader reading .env.local and .env by default.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		dotenvFiles: []string{".env.local", ".env"},
		validate:    validator.New(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load is NewLoader().Load(path).
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// Load builds a Config from defaults, dotenv files, the YAML file at path
// (skipped when path is empty) and the environment, then validates it.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()

	for _, f := range l.dotenvFiles {
		// missing dotenv files are normal; godotenv never overrides set variables
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: dotenv %s: %w", f, err)
		}
	}

	if path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := l.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cfg against its struct tags.
func (l *Loader) Validate(cfg *Config) error {
	if err := l.validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}

	return nil
}

func loadYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

func applyEnv(cfg *Config) {
	setFromEnv(EnvLogLevel, &cfg.Log.Level)
	setFromEnv(EnvLogFormat, &cfg.Log.Format)
	setFromEnv(EnvClock, &cfg.Clock.Mode)
	setFromEnv(EnvMetricsAddr, &cfg.Metrics.Addr)
	setFromEnv(EnvMetricsNamespace, &cfg.Metrics.Namespace)
	setFromEnv(EnvInput, &cfg.Input.Path)
}

// setFromEnv overwrites *dst when key is set to a non-empty value.
func setFromEnv(key string, dst *string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}
