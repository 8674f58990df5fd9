package scoring

import (
	"github.com/shankarnarayanb/aws-network-visualizer/model"
	"github.com/shankarnarayanb/aws-network-visualizer/service/risk"
)

// BuildBindings maps every associated subnet of the VPC's NACLs to its
// binding. When multiple NACLs list the same subnet, the last NACL in
// list order wins, so the result is deterministic for a given document.
// The full rule slices are retained; display truncation happens at render
// time only.
func (s *service) BuildBindings(vpc model.VPC) map[string]model.NaclBinding {
	bindings := make(map[string]model.NaclBinding)

	for _, nacl := range vpc.Nacls {
		name := nacl.Name
		if name == "" {
			name = "N/A"
		}
		for _, subnetID := range nacl.AssociatedSubnets {
			bindings[subnetID] = model.NaclBinding{
				NaclID:        nacl.NaclID,
				NaclName:      name,
				IsDefault:     nacl.IsDefault,
				InboundRules:  nacl.InboundRules,
				OutboundRules: nacl.OutboundRules,
			}
		}
	}

	return bindings
}

// ScoreSubnet classifies every inbound rule of the binding (excluding the
// reserved default-deny entry) and buckets flagged rules by severity.
func (s *service) ScoreSubnet(binding model.NaclBinding) model.SubnetSecurityScore {
	score := model.SubnetSecurityScore{
		Overall: risk.OverallSecure,
		Risks:   make(map[string][]model.RuleIssue),
	}
	for _, level := range risk.Levels {
		score.Risks[level] = nil
	}

	for _, rule := range binding.InboundRules {
		if rule.RuleNumber >= model.ReservedRuleNumber {
			continue
		}
		verdict := s.classifier.Classify(rule, risk.DirectionInbound)
		if verdict.Level == risk.LevelNone {
			continue
		}
		score.Risks[verdict.Level] = append(score.Risks[verdict.Level], model.RuleIssue{
			RuleNumber: rule.RuleNumber,
			Reason:     verdict.Reason,
			Rule:       rule,
		})
		score.TotalIssues++
	}

	// Highest severity present wins.
	for _, level := range risk.Levels {
		if len(score.Risks[level]) > 0 {
			score.Overall = level
			break
		}
	}

	return score
}

// SummarizeVPC flattens the scores of every bound subnet in the VPC into
// one severity-keyed issue list with subnet attribution. Subnets without
// a NACL binding contribute nothing; that is not an error.
func (s *service) SummarizeVPC(vpc model.VPC, bindings map[string]model.NaclBinding) model.VpcSecuritySummary {
	summary := model.VpcSecuritySummary{
		Overall: risk.OverallSecure,
		Risks:   make(map[string][]model.SubnetIssue),
	}
	for _, level := range risk.Levels {
		summary.Risks[level] = nil
	}

	for _, subnet := range vpc.Subnets {
		binding, ok := bindings[subnet.SubnetID]
		if !ok {
			continue
		}

		subnetName := subnet.Name
		if subnetName == "" {
			subnetName = "N/A"
		}

		score := s.ScoreSubnet(binding)
		for _, level := range risk.Levels {
			for _, issue := range score.Risks[level] {
				summary.Risks[level] = append(summary.Risks[level], model.SubnetIssue{
					SubnetName: subnetName,
					SubnetID:   subnet.SubnetID,
					RuleNumber: issue.RuleNumber,
					Reason:     issue.Reason,
				})
				summary.TotalIssues++
			}
		}
	}

	for _, level := range risk.Levels {
		if len(summary.Risks[level]) > 0 {
			summary.Overall = level
			break
		}
	}

	return summary
}
