// Package config loads harness settings from defaults, an optional YAML
// file, a .env file and the process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvSession   = "COOKIE_SESSION"
	EnvInputDir  = "AOC_INPUT_DIR"
	EnvBaseURL   = "AOC_BASE_URL"
	EnvUserAgent = "AOC_USER_AGENT"
)

// DefaultFiles are searched in order when no config path is given.
var DefaultFiles = []string{"aoc.yaml", ".aoc.yaml"}

// Config holds everything the CLI needs besides the day registry.
type Config struct {
	InputDir  string        `yaml:"input_dir"`
	DaysDir   string        `yaml:"days_dir"`
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
	Session   string        `yaml:"session"`
	EnvFile   string        `yaml:"env_file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		InputDir:  "inputs",
		DaysDir:   "days",
		BaseURL:   "https://adventofcode.com",
		UserAgent: "github.com/weiihann/aocharness",
		EnvFile:   ".env",
	}
}

// Load builds the configuration. An explicit path must exist; without
// one the first of DefaultFiles found is used, or none at all.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, path, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	if data != nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if cfg.EnvFile != "" {
		// Variables already present in the environment win.
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", cfg.EnvFile, err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}

	return cfg, nil
}

func readConfigFile(path string) ([]byte, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, path, fmt.Errorf("read config file: %w", err)
		}
		return data, path, nil
	}

	for _, name := range DefaultFiles {
		data, err := os.ReadFile(name)
		if err == nil {
			return data, name, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, name, fmt.Errorf("read config file: %w", err)
		}
	}

	return nil, "", nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvSession); v != "" {
		c.Session = v
	}
	if v := os.Getenv(EnvInputDir); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		c.UserAgent = v
	}
}
