// Package orchestrator runs a single report generation end to end.
package orchestrator

import (
	"github.com/shankarnarayanb/aws-network-visualizer/model"
	"github.com/shankarnarayanb/aws-network-visualizer/service/discovery"
	"github.com/shankarnarayanb/aws-network-visualizer/service/explain"
	"github.com/shankarnarayanb/aws-network-visualizer/service/output"
	"github.com/shankarnarayanb/aws-network-visualizer/service/risk"
	"github.com/shankarnarayanb/aws-network-visualizer/service/scoring"
)

type service struct {
	discoveryService discovery.Service
	riskService      risk.Service
	explainService   explain.Service
	scoringService   scoring.Service
	outputService    output.Service
	versionInfo      model.VersionInfo
	title            string
	ruleDisplayLimit int
}

// Service is the interface for orchestrating a report run.
type Service interface {
	Orchestrate(flags model.Flags) error
}

// NewService creates a new orchestrator service.
func NewService(
	discoveryService discovery.Service,
	riskService risk.Service,
	explainService explain.Service,
	scoringService scoring.Service,
	outputService output.Service,
	versionInfo model.VersionInfo,
	title string,
	ruleDisplayLimit int,
) Service {
	return &service{
		discoveryService: discoveryService,
		riskService:      riskService,
		explainService:   explainService,
		scoringService:   scoringService,
		outputService:    outputService,
		versionInfo:      versionInfo,
		title:            title,
		ruleDisplayLimit: ruleDisplayLimit,
	}
}
