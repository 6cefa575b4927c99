/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package repoconfig loads optional per-repository butler settings from
// a .prbutler.yml file checked into the repository being reviewed.
// Every field is optional; values that are set override the butler's
// environment configuration for that repository.
package repoconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the settings file lives relative to the
// checked-out repository root.
const DefaultPath = ".prbutler.yml"

// Limits bounds the size of a diff the butler will review. Zero values
// leave the corresponding limit unchanged.
type Limits struct {
	MaxFiles        int `yaml:"max_files"`
	MaxAdditions    int `yaml:"max_additions"`
	MaxTotalChanges int `yaml:"max_total_changes"`
}

// Config holds the per-repository overrides.
type Config struct {
	// Disabled turns the butler off for this repository entirely.
	Disabled bool `yaml:"disabled"`

	Provider        string   `yaml:"provider"`
	Model           string   `yaml:"model"`
	ReviewTitle     string   `yaml:"review_title"`
	AssistantName   string   `yaml:"assistant_name"`
	MaxOutputTokens int32    `yaml:"max_output_tokens"`
	Temperature     *float64 `yaml:"temperature"`
	Limits          *Limits  `yaml:"limits"`

	// Instructions is free-form guidance appended to the review prompt,
	// letting a repository steer the reviewer's focus.
	Instructions string `yaml:"instructions"`
}

// Load reads the settings file at path. A missing file is not an
// error; Load returns nil so callers fall back to their defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}
