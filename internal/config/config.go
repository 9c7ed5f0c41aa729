// Package config loads draw settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eykd/hpvdraw/internal/domain"
)

// Default values for a draw.
const (
	DefaultExtract = 400
	DefaultPick    = 200
	DefaultSim     = 10000
	DefaultOutDir  = "."
)

// Config holds all settings of a draw.
type Config struct {
	Extract     int         `yaml:"extract"`
	Pick        int         `yaml:"pick"`
	Sim         int         `yaml:"sim"`
	Input       string      `yaml:"input"`
	OutDir      string      `yaml:"out_dir"`
	Seed        string      `yaml:"seed"`
	Timezone    string      `yaml:"timezone"`
	Eligibility domain.Rule `yaml:"eligibility"`
}

// Default returns the settings used when neither file nor flags say otherwise.
func Default() Config {
	return Config{
		Extract:     DefaultExtract,
		Pick:        DefaultPick,
		Sim:         DefaultSim,
		OutDir:      DefaultOutDir,
		Eligibility: domain.DefaultRule(),
	}
}

// Load reads path and overlays it on Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data over Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Location resolves Timezone, defaulting to the local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks values that no source may leave invalid.
func (c Config) Validate() error {
	if c.Extract < 0 {
		return fmt.Errorf("extract must not be negative, got %d", c.Extract)
	}
	if c.Pick < 0 {
		return fmt.Errorf("pick must not be negative, got %d", c.Pick)
	}
	if err := c.Eligibility.Validate(); err != nil {
		return fmt.Errorf("eligibility: %w", err)
	}
	return nil
}
