package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the scheduling service.
type Config struct {
	// Listen is the host:port the HTTP server binds to.
	Listen string `yaml:"listen"`
	// DefaultQuantum is used for Round-Robin requests that omit a quantum. 0 means none.
	DefaultQuantum int `yaml:"default_quantum"`
	// MaxTasks bounds the number of tasks in one request.
	MaxTasks int `yaml:"max_tasks"`
	// MaxHorizon bounds the simulated time of one request: latest arrival plus total burst.
	MaxHorizon int `yaml:"max_horizon"`
	// RequestTimeout bounds the handling of one request.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	CORS           CORS          `yaml:"cors"`
}

// CORS lists the origins allowed to call the service from a browser.
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen:         ":8000",
		MaxTasks:       1000,
		MaxHorizon:     1_000_000,
		RequestTimeout: 5 * time.Second,
		CORS:           CORS{AllowedOrigins: []string{"*"}},
	}
}

// Load reads a YAML config file from the given path. Keys missing from the
// file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all config values are valid.
func (c *Config) validate() error {
	if c.Listen == "" {
		return fmt.Errorf("invalid listen address: cannot be empty")
	}
	if c.DefaultQuantum < 0 {
		return fmt.Errorf("invalid default_quantum %d: must be >= 0", c.DefaultQuantum)
	}
	if c.MaxTasks <= 0 {
		return fmt.Errorf("invalid max_tasks %d: must be > 0", c.MaxTasks)
	}
	if c.MaxHorizon <= 0 {
		return fmt.Errorf("invalid max_horizon %d: must be > 0", c.MaxHorizon)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("invalid request_timeout %s: must be > 0", c.RequestTimeout)
	}
	return nil
}
