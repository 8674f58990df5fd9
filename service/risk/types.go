// Package risk classifies NACL rules into security risk verdicts.
package risk

import "github.com/shankarnarayanb/aws-network-visualizer/model"

// Severity levels for rule verdicts, ordered from most to least severe.
const (
	LevelCritical = "critical"
	LevelHigh     = "high"
	LevelMedium   = "medium"
	LevelLow      = "low"
	LevelNone     = "none"
)

// OverallSecure is the subnet/VPC overall level when no rule is flagged.
const OverallSecure = "secure"

// Traffic directions.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Levels lists the bucketed severity levels in display order.
var Levels = []string{LevelCritical, LevelHigh, LevelMedium, LevelLow}

type service struct{}

// Service is the interface for NACL rule risk classification.
type Service interface {
	Classify(rule model.NaclRule, direction string) model.RiskVerdict
}

// NewService creates a new risk classification service.
func NewService() Service {
	return &service{}
}
