// Package config loads the optional report configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when no config file or flag overrides a setting.
const (
	DefaultOutputDir        = "network_reports"
	DefaultReportTitle      = "AWS Network Infrastructure Report"
	DefaultRuleDisplayLimit = 5
)

// ReportConfig holds report generation settings.
type ReportConfig struct {
	OutputDir        string   `yaml:"output_dir"`
	ReportTitle      string   `yaml:"report_title"`
	Formats          []string `yaml:"formats"`
	RuleDisplayLimit int      `yaml:"rule_display_limit"`
}

type service struct{}

// Service is the interface for report configuration loading.
type Service interface {
	Load(path string) (ReportConfig, error)
}

// NewService creates a new configuration service.
func NewService() Service {
	return &service{}
}

// Load returns the configuration at path merged over defaults. An empty
// path yields pure defaults; an explicit path that cannot be read or
// parsed is an error.
func (s *service) Load(path string) (ReportConfig, error) {
	cfg := ReportConfig{
		OutputDir:        DefaultOutputDir,
		ReportTitle:      DefaultReportTitle,
		RuleDisplayLimit: DefaultRuleDisplayLimit,
	}

	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid YAML in config file %s: %w", path, err)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.ReportTitle == "" {
		cfg.ReportTitle = DefaultReportTitle
	}
	if cfg.RuleDisplayLimit <= 0 {
		cfg.RuleDisplayLimit = DefaultRuleDisplayLimit
	}

	return cfg, nil
}
