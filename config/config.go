// Package config loads the optional planner configuration file (YAML).
// Absent file or absent keys fall back to defaults; CLI flags override both.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"roadsweep/eulerize"
)

// Config is the planner configuration.
type Config struct {
	// Workers bounds concurrent component processing. 0 = NumCPU.
	Workers int `yaml:"workers"`

	// ExactMatchLimit is the largest odd-node set solved with the exact
	// matching DP during augmentation.
	ExactMatchLimit int `yaml:"exact_match_limit"`

	// MetricsAddr, when set, makes the CLI serve Prometheus metrics on this
	// address for the duration of the run.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Workers:         runtime.NumCPU(),
		ExactMatchLimit: eulerize.DefaultExactMatchLimit,
	}
}

// Load reads a YAML config file and applies defaults to unset fields.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	// Apply defaults.
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ExactMatchLimit <= 0 {
		cfg.ExactMatchLimit = eulerize.DefaultExactMatchLimit
	}
	return &cfg, nil
}
