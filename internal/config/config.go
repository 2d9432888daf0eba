package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the optional settings read from config.yaml. Command-line
// flags and CUSTIMER_* environment variables override it.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Theme    string        `yaml:"theme"`
	Alert    AlertConfig   `yaml:"alert"`
	Metrics  MetricsConfig `yaml:"metrics"`
	NATS     NATSConfig    `yaml:"nats"`
}

// AlertConfig tunes the completion bell.
type AlertConfig struct {
	Repetitions int           `yaml:"repetitions"`
	Interval    time.Duration `yaml:"interval"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// NATSConfig enables event publication when URL is set.
type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: LogLevelInfo,
		Theme:    ThemeDefault,
		Alert: AlertConfig{
			Repetitions: AlertRepetitions,
			Interval:    AlertInterval,
		},
		NATS: NATSConfig{Subject: DefaultNATSSubject},
	}
}

// Load reads a configuration file. A missing file yields the defaults;
// ${VAR} references in the file are expanded from the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnvFiles loads KEY=VALUE files into the process environment.
// Missing files are skipped and variables already set are kept.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.LogLevel == "" {
		c.LogLevel = LogLevelInfo
	}
	if c.Theme == "" {
		c.Theme = ThemeDefault
	}
	if c.Alert.Repetitions == 0 {
		c.Alert.Repetitions = AlertRepetitions
	}
	if c.Alert.Interval == 0 {
		c.Alert.Interval = AlertInterval
	}
	if c.NATS.Subject == "" {
		c.NATS.Subject = DefaultNATSSubject
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	switch c.Theme {
	case ThemeDefault, ThemeMono:
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	if c.Alert.Repetitions < 1 || c.Alert.Repetitions > MaxAlertRepetitions {
		return fmt.Errorf("alert.repetitions must be between 1 and %d", MaxAlertRepetitions)
	}
	if c.Alert.Interval < MinAlertInterval || c.Alert.Interval > MaxAlertInterval {
		return fmt.Errorf("alert.interval must be between %s and %s", MinAlertInterval, MaxAlertInterval)
	}
	return nil
}
