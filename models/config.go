// Package models defines data structures for configuration and input records.
package models

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for an analyze run. Values may come
// from a YAML config file, CLI flags, or both; flags win.
type Config struct {
	DataDir  string `yaml:"data_dir"`
	Workers  int    `yaml:"workers"`
	ReportID string `yaml:"report_id"`
	Output   string `yaml:"output"`
	Format   string `yaml:"format"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

// ApplyDefaults fills in anything still unset after flag merging. An invalid
// worker count falls back to the host's available parallelism.
func (c *Config) ApplyDefaults() {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.ReportID == "" {
		c.ReportID = "qa-stats"
	}
	if c.Format == "" {
		c.Format = "json"
	}
}
