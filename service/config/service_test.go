package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	svc := NewService()

	cfg, err := svc.Load("")
	if err != nil {
		t.Fatalf("Load with empty path failed: %v", err)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Fatalf("got output dir %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if cfg.ReportTitle != DefaultReportTitle {
		t.Fatalf("got title %q", cfg.ReportTitle)
	}
	if cfg.RuleDisplayLimit != DefaultRuleDisplayLimit {
		t.Fatalf("got rule display limit %d", cfg.RuleDisplayLimit)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	svc := NewService()

	path := filepath.Join(t.TempDir(), "netviz.yaml")
	content := "output_dir: /tmp/reports\nreport_title: Production Network\nformats:\n  - html\n  - markdown\nrule_display_limit: 10\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := svc.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "/tmp/reports" || cfg.ReportTitle != "Production Network" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Formats) != 2 || cfg.RuleDisplayLimit != 10 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	svc := NewService()

	if _, err := svc.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for explicitly requested missing config")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	svc := NewService()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("output_dir: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := svc.Load(path); err == nil {
		t.Fatalf("expected error for invalid YAML")
	}
}
