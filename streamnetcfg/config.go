// Copyright 2016 the StreamNet Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Package streamnetcfg loads the YAML run defaults the cmd/streamnet CLI
// merges with its flags, grounded on fredericrous-cluster-vision's own
// gopkg.in/yaml.v3 config loading.
package streamnetcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the set of run defaults a YAML file may supply. CLI flags take
// precedence over any value set here (SPEC_FULL.md §4.8).
type Config struct {
	SnapDistance float64 `yaml:"snapDistance"`
	OutputPath   string  `yaml:"outputPath"`
	EmitNodes    bool    `yaml:"emitNodes"`
	LogLevel     string  `yaml:"logLevel"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		SnapDistance: 1.0,
		OutputPath:   "",
		EmitNodes:    true,
		LogLevel:     "info",
	}
}

// Load reads and parses a YAML config file at path. Fields absent from the
// file keep Default's values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
