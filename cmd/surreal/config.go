// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the optional settings read from a YAML config file.
//
// Every field has a usable zero-adjacent default, so running without a
// config file is the normal case. Flags override anything set here.
type Config struct {
	// Display controls how numbers are rendered.
	Display DisplayConfig `yaml:"display"`

	// Genesis controls the day-by-day construction.
	Genesis GenesisConfig `yaml:"genesis"`

	// Log controls diagnostic logging.
	Log LogConfig `yaml:"log"`

	// Personality picks the output style (full, standard, minimal, machine).
	Personality string `yaml:"personality"`
}

type DisplayConfig struct {
	Width int `yaml:"width"` // options shown per side of a lazy form, e.g. 5
	Depth int `yaml:"depth"` // structural depth before switching to floats
}

type GenesisConfig struct {
	Workers int `yaml:"workers"` // parallel expansion workers, 0 = NumCPU
	MaxDay  int `yaml:"max_day"` // refuse targets beyond this day, 0 = no cap
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`   // when set, also log JSON to this directory
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Width: 5,
			Depth: 0,
		},
		Genesis: GenesisConfig{
			Workers: 0,
			MaxDay:  0,
		},
		// Warn by default: the engine narrates expansions at info and
		// below, which belongs behind --log-level for interactive runs.
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// loadConfig reads path and merges it over the defaults.
//
// A missing file is not an error unless explicit is true, meaning the
// user named the path on the command line and presumably expects it to
// exist.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
