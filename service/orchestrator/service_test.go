package orchestrator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
	"github.com/shankarnarayanb/aws-network-visualizer/service/discovery"
	"github.com/shankarnarayanb/aws-network-visualizer/service/explain"
	"github.com/shankarnarayanb/aws-network-visualizer/service/risk"
	"github.com/shankarnarayanb/aws-network-visualizer/service/scoring"
)

type captureOutput struct {
	input model.RenderReportInput
	err   error
}

func (c *captureOutput) Render(input model.RenderReportInput) error {
	c.input = input
	return c.err
}

const orchestratorDiscovery = `{
  "region": "eu-west-1",
  "timestamp": "2024-06-01T10:00:00Z",
  "summary": {"total_vpcs": 1},
  "vpcs": [
    {
      "vpc_id": "vpc-1",
      "name": "test-vpc",
      "cidr_block": "10.0.0.0/16",
      "subnets": [
        {"subnet_id": "subnet-1", "name": "web-public-1a", "cidr_block": "10.0.1.0/24", "availability_zone": "eu-west-1a", "available_ip_count": 250, "subnet_type": "Public"},
        {"subnet_id": "subnet-2", "name": "db-private-1a", "cidr_block": "10.0.2.0/24", "availability_zone": "eu-west-1a", "available_ip_count": 251, "subnet_type": "Private"}
      ],
      "nacls": [
        {
          "nacl_id": "acl-1",
          "name": "web-acl",
          "is_default": false,
          "associated_subnets": ["subnet-1"],
          "inbound_rules": [
            {"rule_number": 100, "action": "allow", "protocol": "tcp", "cidr": "0.0.0.0/0", "port_range": "22"},
            {"rule_number": 110, "action": "allow", "protocol": "tcp", "cidr": "0.0.0.0/0", "port_range": "80"},
            {"rule_number": 32767, "action": "deny", "protocol": "all", "cidr": "0.0.0.0/0", "port_range": "All"}
          ],
          "outbound_rules": [
            {"rule_number": 100, "action": "allow", "protocol": "all", "cidr": "0.0.0.0/0", "port_range": "All"}
          ]
        }
      ]
    }
  ],
  "connectivity": {}
}`

func newTestService(t *testing.T, out *captureOutput, ruleDisplayLimit int) Service {
	t.Helper()

	riskService := risk.NewService()
	return NewService(
		discovery.NewService(),
		riskService,
		explain.NewService(),
		scoring.NewService(riskService),
		out,
		model.VersionInfo{Version: "test"},
		"Test Report",
		ruleDisplayLimit,
	)
}

func writeDiscovery(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "discovery.json")
	require.NoError(t, os.WriteFile(path, []byte(orchestratorDiscovery), 0o644))
	return path
}

func TestOrchestrateBuildsRenderInput(t *testing.T) {
	out := &captureOutput{}
	svc := newTestService(t, out, 5)

	err := svc.Orchestrate(model.Flags{DiscoveryFile: writeDiscovery(t)})
	require.NoError(t, err)

	input := out.input
	assert.Equal(t, "Test Report", input.Title)
	assert.Equal(t, "eu-west-1", input.Region)
	assert.NotEmpty(t, input.GeneratedAt)

	require.Len(t, input.VPCs, 1)
	vpc := input.VPCs[0]
	require.Len(t, vpc.PublicSubnets, 1)
	require.Len(t, vpc.PrivateSubnets, 1)

	public := vpc.PublicSubnets[0]
	assert.True(t, public.HasNacl)
	assert.Equal(t, "web-acl", public.Nacl.NaclName)
	assert.Equal(t, "critical", public.Score.Overall)

	// Reserved default-deny rule is excluded from both views and totals.
	assert.Equal(t, 2, public.Nacl.TotalInbound)
	require.Len(t, public.Nacl.InboundRules, 2)

	ssh := public.Nacl.InboundRules[0]
	assert.Equal(t, "critical", ssh.Level)
	assert.Contains(t, ssh.Reason, "SSH port 22 open to entire Internet")
	assert.NotEmpty(t, ssh.Explanation)

	http := public.Nacl.InboundRules[1]
	assert.Equal(t, "low", http.Level)

	// Subnet without a NACL association carries no view.
	private := vpc.PrivateSubnets[0]
	assert.False(t, private.HasNacl)

	// VPC summary attributes flagged rules to their subnet.
	assert.Equal(t, "critical", vpc.Summary.Overall)
	assert.Equal(t, 2, vpc.Summary.TotalIssues)
	require.Len(t, vpc.Summary.Risks["critical"], 1)
	assert.Equal(t, "web-public-1a", vpc.Summary.Risks["critical"][0].SubnetName)
}

func TestOrchestrateTruncatesDisplayedRules(t *testing.T) {
	out := &captureOutput{}
	svc := newTestService(t, out, 1)

	err := svc.Orchestrate(model.Flags{DiscoveryFile: writeDiscovery(t)})
	require.NoError(t, err)

	public := out.input.VPCs[0].PublicSubnets[0]
	assert.Len(t, public.Nacl.InboundRules, 1)
	assert.Equal(t, 2, public.Nacl.TotalInbound)

	// Scoring still covers the full rule set.
	assert.Equal(t, 2, public.Score.TotalIssues)
}

func TestOrchestrateMissingFile(t *testing.T) {
	out := &captureOutput{}
	svc := newTestService(t, out, 5)

	err := svc.Orchestrate(model.Flags{DiscoveryFile: filepath.Join(t.TempDir(), "nope.json")})
	require.Error(t, err)
}
