package orchestrator

import (
	"fmt"
	"time"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
	"github.com/shankarnarayanb/aws-network-visualizer/service/risk"
	"github.com/shankarnarayanb/aws-network-visualizer/shared/spinner"
)

// Orchestrate loads the discovery document, runs the classification
// engine over every VPC, and hands the render-ready result to the output
// service.
func (s *service) Orchestrate(flags model.Flags) error {
	doc, err := s.discoveryService.Load(flags.DiscoveryFile)
	if err != nil {
		return err
	}

	input := s.buildReportInput(doc)

	spinner.StopSpinner()

	if err := s.outputService.Render(input); err != nil {
		return fmt.Errorf("report rendering failed: %w", err)
	}
	return nil
}

func (s *service) buildReportInput(doc model.Discovery) model.RenderReportInput {
	input := model.RenderReportInput{
		Title:            s.title,
		Region:           doc.Region,
		Timestamp:        doc.Timestamp,
		GeneratedAt:      time.Now().Format("2006-01-02 15:04:05 MST"),
		Summary:          doc.Summary,
		Connectivity:     doc.Connectivity,
		RuleDisplayLimit: s.ruleDisplayLimit,
	}

	for _, vpc := range doc.VPCs {
		input.VPCs = append(input.VPCs, s.buildVpcView(vpc))
	}

	return input
}

func (s *service) buildVpcView(vpc model.VPC) model.VpcView {
	bindings := s.scoringService.BuildBindings(vpc)

	view := model.VpcView{
		VPC:     vpc,
		Summary: s.scoringService.SummarizeVPC(vpc, bindings),
	}

	for _, subnet := range vpc.Subnets {
		sv := model.SubnetView{Subnet: subnet}
		if binding, ok := bindings[subnet.SubnetID]; ok {
			sv.HasNacl = true
			sv.Nacl = s.buildNaclView(binding)
			sv.Score = s.scoringService.ScoreSubnet(binding)
		}

		switch subnet.SubnetType {
		case "Public":
			view.PublicSubnets = append(view.PublicSubnets, sv)
		case "Private":
			view.PrivateSubnets = append(view.PrivateSubnets, sv)
		}
	}

	return view
}

// buildNaclView annotates each displayable rule with its verdict and
// explanation. Scoring always covers the full rule set; only the
// rendered lists are truncated.
func (s *service) buildNaclView(binding model.NaclBinding) model.NaclView {
	view := model.NaclView{
		NaclID:    binding.NaclID,
		NaclName:  binding.NaclName,
		IsDefault: binding.IsDefault,
	}

	view.InboundRules, view.TotalInbound = s.buildRuleViews(binding.InboundRules, risk.DirectionInbound)
	view.OutboundRules, view.TotalOutbound = s.buildRuleViews(binding.OutboundRules, risk.DirectionOutbound)

	return view
}

func (s *service) buildRuleViews(rules []model.NaclRule, direction string) ([]model.RuleView, int) {
	var views []model.RuleView
	total := 0

	for _, rule := range rules {
		if rule.RuleNumber >= model.ReservedRuleNumber {
			continue
		}
		total++
		if s.ruleDisplayLimit > 0 && len(views) >= s.ruleDisplayLimit {
			continue
		}

		verdict := s.riskService.Classify(rule, direction)
		views = append(views, model.RuleView{
			Rule:        rule,
			Level:       verdict.Level,
			Reason:      verdict.Reason,
			Explanation: s.explainService.ExplainRule(rule, direction),
		})
	}

	return views, total
}
