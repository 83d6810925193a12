// Package config loads klotskid's server configuration, the way
// cmd/katie-server's config.go loads its YAML config: read the file,
// unmarshal, then check every required field is populated.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the file format of klotskid's config file.
type Config struct {
	ServerAddr  string `yaml:"addr"`
	MetricsAddr string `yaml:"metrics-addr"`

	DefaultMaxDepth int    `yaml:"default-max-depth"`
	CacheFile       string `yaml:"cache-file"`
}

// Read loads and validates a Config from filename.
func Read(filename string) (*Config, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}

	if c.ServerAddr == "" {
		return nil, fmt.Errorf("field not provided: addr")
	}
	if c.MetricsAddr == "" {
		return nil, fmt.Errorf("field not provided: metrics-addr")
	}
	if c.DefaultMaxDepth <= 0 {
		return nil, fmt.Errorf("field not provided or invalid: default-max-depth")
	}
	if c.CacheFile == "" {
		return nil, fmt.Errorf("field not provided: cache-file")
	}
	return &c, nil
}
