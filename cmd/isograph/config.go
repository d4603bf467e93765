// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. Flags given on the command line
// override it.
type Config struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Search struct {
		Limit  int  `yaml:"limit"`
		Labels bool `yaml:"labels"`
	} `yaml:"search"`

	Motif struct {
		Size     int   `yaml:"size"`
		Samples  int   `yaml:"samples"`
		Attempts int   `yaml:"attempts"`
		Workers  int   `yaml:"workers"`
		Seed     int64 `yaml:"seed"`
	} `yaml:"motif"`

	MetricsFile string `yaml:"metrics_file"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Motif.Size = 3
	cfg.Motif.Samples = 1000
	cfg.Motif.Seed = 1
	return cfg
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}
