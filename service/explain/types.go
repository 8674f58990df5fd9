// Package explain translates CIDR blocks, port ranges, and NACL rules
// into reader-facing prose. It is purely descriptive and never changes
// severity.
package explain

import "github.com/shankarnarayanb/aws-network-visualizer/model"

type service struct{}

// Service is the interface for human-readable rule interpretation.
type Service interface {
	ExplainCIDR(cidr string) string
	ExplainPort(portRange, protocol string) string
	ExplainRule(rule model.NaclRule, direction string) string
}

// NewService creates a new explanation service.
func NewService() Service {
	return &service{}
}
