// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads the optional .featgov.yaml from the repo root.
//
// The file is read directly with yaml.v3, no config singleton: loading must
// behave the same from any working directory and at any point in a command's
// lifecycle. A missing or unparseable file yields pure defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/featgov/internal/projectroot"
	"github.com/bartekus/featgov/pkg/gov"
)

// FileName is the config file expected at the repo root.
const FileName = ".featgov.yaml"

// DefaultReportOut is where the markdown artifact lands when unconfigured.
const DefaultReportOut = "docs/__generated__/bdd-governance.md"

// ReportConfig configures the report command.
type ReportConfig struct {
	Out string `yaml:"out"`
}

// CheckConfig holds the gate thresholds: the maximum tolerated count per
// finding before the check fails. Zero means strict.
type CheckConfig struct {
	MaxMissingStatus int `yaml:"maxMissingStatus"`
	MaxConflicts     int `yaml:"maxConflicts"`
	MaxReadyUnlinked int `yaml:"maxReadyUnlinked"`
}

// Config is the parsed .featgov.yaml with defaults applied.
type Config struct {
	AppsDir     string       `yaml:"appsDir"`
	FeaturesDir string       `yaml:"featuresDir"`
	ExtraIgnore []string     `yaml:"extraIgnore"`
	Report      ReportConfig `yaml:"report"`
	Check       CheckConfig  `yaml:"check"`
}

// Load reads .featgov.yaml from rootDir. Never nil and never an error: a
// missing or broken file degrades to the defaults.
func Load(rootDir string) *Config {
	cfg := &Config{}
	data, err := os.ReadFile(filepath.Join(rootDir, FileName)) // #nosec G304 - anchored to the resolved repo root
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			cfg = &Config{}
		}
	}
	return cfg.withDefaults()
}

// LoadWithEnv is Load plus environment overrides. Variables win over file
// values: FEATGOV_APPS_DIR, FEATGOV_FEATURES_DIR.
func LoadWithEnv(rootDir string) *Config {
	cfg := Load(rootDir)
	if v := os.Getenv("FEATGOV_APPS_DIR"); v != "" {
		cfg.AppsDir = v
	}
	if v := os.Getenv("FEATGOV_FEATURES_DIR"); v != "" {
		cfg.FeaturesDir = v
	}
	return cfg
}

func (c *Config) withDefaults() *Config {
	if c.AppsDir == "" {
		c.AppsDir = projectroot.AppsDir
	}
	if c.FeaturesDir == "" {
		c.FeaturesDir = gov.DefaultFeaturesDir
	}
	if c.Report.Out == "" {
		c.Report.Out = DefaultReportOut
	}
	return c
}
