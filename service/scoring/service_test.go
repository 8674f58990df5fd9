package scoring

import (
	"testing"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
	"github.com/shankarnarayanb/aws-network-visualizer/service/risk"
)

func newTestService() Service {
	return NewService(risk.NewService())
}

func TestBuildBindingsLastNaclWins(t *testing.T) {
	svc := newTestService()

	vpc := model.VPC{
		VpcID: "vpc-1",
		Nacls: []model.Nacl{
			{
				NaclID:            "acl-first",
				Name:              "first",
				AssociatedSubnets: []string{"subnet-a", "subnet-b"},
			},
			{
				NaclID:            "acl-second",
				Name:              "second",
				IsDefault:         true,
				AssociatedSubnets: []string{"subnet-b"},
			},
		},
	}

	bindings := svc.BuildBindings(vpc)
	if len(bindings) != 2 {
		t.Fatalf("got %d bindings, want 2", len(bindings))
	}
	if bindings["subnet-a"].NaclID != "acl-first" {
		t.Fatalf("subnet-a bound to %s, want acl-first", bindings["subnet-a"].NaclID)
	}
	if bindings["subnet-b"].NaclID != "acl-second" {
		t.Fatalf("subnet-b bound to %s, want acl-second (last NACL in list order wins)", bindings["subnet-b"].NaclID)
	}
	if !bindings["subnet-b"].IsDefault {
		t.Fatalf("subnet-b binding should carry is_default")
	}
}

func TestBuildBindingsKeepsFullRuleSets(t *testing.T) {
	svc := newTestService()

	rules := make([]model.NaclRule, 0, 8)
	for i := 0; i < 8; i++ {
		rules = append(rules, model.NaclRule{
			RuleNumber: 100 + i*10,
			Action:     "allow",
			Protocol:   "tcp",
			CIDR:       "0.0.0.0/0",
			PortRange:  "443",
		})
	}

	vpc := model.VPC{
		Nacls: []model.Nacl{{
			NaclID:            "acl-1",
			AssociatedSubnets: []string{"subnet-a"},
			InboundRules:      rules,
		}},
	}

	binding := svc.BuildBindings(vpc)["subnet-a"]
	if len(binding.InboundRules) != 8 {
		t.Fatalf("got %d inbound rules, want full untruncated set of 8", len(binding.InboundRules))
	}
}

func TestScoreSubnetEmptyAndReservedOnly(t *testing.T) {
	svc := newTestService()

	score := svc.ScoreSubnet(model.NaclBinding{})
	if score.Overall != risk.OverallSecure || score.TotalIssues != 0 {
		t.Fatalf("empty binding: got overall=%q issues=%d, want secure/0", score.Overall, score.TotalIssues)
	}

	score = svc.ScoreSubnet(model.NaclBinding{
		InboundRules: []model.NaclRule{
			{RuleNumber: 32767, Action: "allow", Protocol: "all", CIDR: "0.0.0.0/0", PortRange: "All"},
		},
	})
	if score.Overall != risk.OverallSecure || score.TotalIssues != 0 {
		t.Fatalf("reserved-only binding: got overall=%q issues=%d, want secure/0", score.Overall, score.TotalIssues)
	}
}

func TestScoreSubnetHighestSeverityWins(t *testing.T) {
	svc := newTestService()

	binding := model.NaclBinding{
		InboundRules: []model.NaclRule{
			{RuleNumber: 100, Action: "allow", Protocol: "tcp", CIDR: "0.0.0.0/0", PortRange: "80"},
			{RuleNumber: 110, Action: "allow", Protocol: "tcp", CIDR: "0.0.0.0/0", PortRange: "8080"},
			{RuleNumber: 120, Action: "allow", Protocol: "tcp", CIDR: "0.0.0.0/0", PortRange: "22"},
			{RuleNumber: 130, Action: "allow", Protocol: "tcp", CIDR: "0.0.0.0/0", PortRange: "443"},
		},
	}

	score := svc.ScoreSubnet(binding)
	if score.Overall != risk.LevelCritical {
		t.Fatalf("got overall %q, want critical", score.Overall)
	}
	if score.TotalIssues != 3 {
		t.Fatalf("got %d issues, want 3 (443 is not a finding)", score.TotalIssues)
	}
	if len(score.Risks[risk.LevelCritical]) != 1 || score.Risks[risk.LevelCritical][0].RuleNumber != 120 {
		t.Fatalf("critical bucket = %+v, want rule 120", score.Risks[risk.LevelCritical])
	}
}

func TestSummarizeVPCEndToEnd(t *testing.T) {
	svc := newTestService()

	vpc := model.VPC{
		VpcID: "vpc-1",
		Subnets: []model.Subnet{
			{SubnetID: "subnet-web", Name: "web-public-1a", SubnetType: "Public"},
			{SubnetID: "subnet-orphan", Name: "no-acl", SubnetType: "Private"},
		},
		Nacls: []model.Nacl{{
			NaclID:            "acl-web",
			Name:              "web-acl",
			AssociatedSubnets: []string{"subnet-web"},
			InboundRules: []model.NaclRule{
				{RuleNumber: 100, Action: "allow", Protocol: "tcp", CIDR: "0.0.0.0/0", PortRange: "22"},
			},
		}},
	}

	bindings := svc.BuildBindings(vpc)
	summary := svc.SummarizeVPC(vpc, bindings)

	if summary.Overall != risk.LevelCritical {
		t.Fatalf("got overall %q, want critical", summary.Overall)
	}
	if summary.TotalIssues != 1 {
		t.Fatalf("got %d issues, want 1", summary.TotalIssues)
	}

	critical := summary.Risks[risk.LevelCritical]
	if len(critical) != 1 {
		t.Fatalf("critical bucket has %d entries, want 1", len(critical))
	}
	issue := critical[0]
	if issue.SubnetName != "web-public-1a" || issue.SubnetID != "subnet-web" || issue.RuleNumber != 100 {
		t.Fatalf("unexpected issue attribution: %+v", issue)
	}
	if issue.Reason == "" {
		t.Fatalf("issue is missing its rationale")
	}
}

func TestSummarizeVPCUnboundSubnetContributesNothing(t *testing.T) {
	svc := newTestService()

	vpc := model.VPC{
		VpcID: "vpc-1",
		Subnets: []model.Subnet{
			{SubnetID: "subnet-orphan", Name: "orphan"},
		},
	}

	summary := svc.SummarizeVPC(vpc, svc.BuildBindings(vpc))
	if summary.Overall != risk.OverallSecure || summary.TotalIssues != 0 {
		t.Fatalf("unbound subnet: got overall=%q issues=%d, want secure/0", summary.Overall, summary.TotalIssues)
	}
}

func TestSummarizeVPCOverallIsMaxOfSubnets(t *testing.T) {
	svc := newTestService()

	vpc := model.VPC{
		VpcID: "vpc-1",
		Subnets: []model.Subnet{
			{SubnetID: "subnet-low", Name: "low"},
			{SubnetID: "subnet-medium", Name: "medium"},
		},
		Nacls: []model.Nacl{
			{
				NaclID:            "acl-low",
				AssociatedSubnets: []string{"subnet-low"},
				InboundRules: []model.NaclRule{
					{RuleNumber: 100, Action: "allow", Protocol: "tcp", CIDR: "0.0.0.0/0", PortRange: "80"},
				},
			},
			{
				NaclID:            "acl-medium",
				AssociatedSubnets: []string{"subnet-medium"},
				InboundRules: []model.NaclRule{
					{RuleNumber: 100, Action: "allow", Protocol: "tcp", CIDR: "10.0.0.0/16", PortRange: "0-65535"},
				},
			},
		},
	}

	summary := svc.SummarizeVPC(vpc, svc.BuildBindings(vpc))
	if summary.Overall != risk.LevelMedium {
		t.Fatalf("got overall %q, want medium (max across subnets)", summary.Overall)
	}
	if summary.TotalIssues != 2 {
		t.Fatalf("got %d issues, want 2", summary.TotalIssues)
	}
}
