// Package scoring aggregates per-rule risk verdicts into subnet security
// scores and VPC-level summaries.
package scoring

import (
	"github.com/shankarnarayanb/aws-network-visualizer/model"
	"github.com/shankarnarayanb/aws-network-visualizer/service/risk"
)

type service struct {
	classifier risk.Service
}

// Service is the interface for NACL binding and score aggregation.
type Service interface {
	BuildBindings(vpc model.VPC) map[string]model.NaclBinding
	ScoreSubnet(binding model.NaclBinding) model.SubnetSecurityScore
	SummarizeVPC(vpc model.VPC, bindings map[string]model.NaclBinding) model.VpcSecuritySummary
}

// NewService creates a new scoring service backed by the given classifier.
func NewService(classifier risk.Service) Service {
	return &service{classifier: classifier}
}
