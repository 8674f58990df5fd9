package main

import (
	"fmt"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
	"github.com/shankarnarayanb/aws-network-visualizer/service/config"
	"github.com/shankarnarayanb/aws-network-visualizer/service/discovery"
	"github.com/shankarnarayanb/aws-network-visualizer/service/explain"
	"github.com/shankarnarayanb/aws-network-visualizer/service/orchestrator"
	"github.com/shankarnarayanb/aws-network-visualizer/service/output"
	"github.com/shankarnarayanb/aws-network-visualizer/service/risk"
	"github.com/shankarnarayanb/aws-network-visualizer/service/scoring"
	"github.com/shankarnarayanb/aws-network-visualizer/shared/spinner"
)

// runReport wires the analysis and rendering services together and runs a
// single report generation.
func runReport(flags model.Flags, versionInfo model.VersionInfo) error {
	configService := config.NewService()
	cfg, err := configService.Load(flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load report config: %w", err)
	}

	// Command-line flags win over config file values.
	outputDir := cfg.OutputDir
	if flags.OutputDir != "" {
		outputDir = flags.OutputDir
	}

	ruleDisplayLimit := cfg.RuleDisplayLimit
	if flags.RuleDisplayLimit > 0 {
		ruleDisplayLimit = flags.RuleDisplayLimit
	}

	formats := cfg.Formats
	if flags.Format != "" {
		formats = []string{flags.Format}
	}
	if len(formats) == 0 {
		formats = []string{string(output.FormatHTML)}
	}

	spinner.StartSpinner()
	defer spinner.StopSpinner()

	riskService := risk.NewService()
	explainService := explain.NewService()
	scoringService := scoring.NewService(riskService)
	discoveryService := discovery.NewService()
	outputService := output.NewService(formats, outputDir)

	orchestratorService := orchestrator.NewService(
		discoveryService,
		riskService,
		explainService,
		scoringService,
		outputService,
		versionInfo,
		cfg.ReportTitle,
		ruleDisplayLimit,
	)

	return orchestratorService.Orchestrate(flags)
}
