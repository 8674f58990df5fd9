package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempDiscovery(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "discovery.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp discovery file: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	svc := NewService()

	if _, err := svc.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	svc := NewService()
	path := writeTempDiscovery(t, "{not json")

	if _, err := svc.Load(path); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	svc := NewService()
	path := writeTempDiscovery(t, `{
		"vpcs": [{
			"vpc_id": "vpc-1",
			"cidr_block": "10.0.0.0/16",
			"subnets": [{"subnet_id": "subnet-1", "cidr_block": "10.0.1.0/24"}],
			"nacls": [{
				"nacl_id": "acl-1",
				"associated_subnets": ["subnet-1"],
				"inbound_rules": [{"rule_number": 100, "action": "allow", "protocol": "tcp", "cidr": "0.0.0.0/0"}]
			}]
		}]
	}`)

	doc, err := svc.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.Region != "unknown" {
		t.Fatalf("region default: got %q, want unknown", doc.Region)
	}
	if doc.VPCs[0].Name != "N/A" {
		t.Fatalf("vpc name default: got %q, want N/A", doc.VPCs[0].Name)
	}
	if doc.VPCs[0].Subnets[0].Name != "N/A" {
		t.Fatalf("subnet name default: got %q, want N/A", doc.VPCs[0].Subnets[0].Name)
	}
	if got := doc.VPCs[0].Nacls[0].InboundRules[0].PortRange; got != "All" {
		t.Fatalf("port_range default: got %q, want All", got)
	}
}

func TestLoadFullDocument(t *testing.T) {
	svc := NewService()
	path := writeTempDiscovery(t, `{
		"region": "eu-west-1",
		"timestamp": "2026-08-01T10:00:00Z",
		"summary": {"total_vpcs": 1, "public_subnets": 1, "private_subnets": 0, "nat_gateways": 0},
		"vpcs": [{
			"vpc_id": "vpc-1",
			"name": "prod",
			"cidr_block": "10.0.0.0/16",
			"internet_gateway": {"igw_id": "igw-1"}
		}],
		"connectivity": {
			"vpc_peering": [{"peering_id": "pcx-1", "status": "active",
				"requester": {"vpc_id": "vpc-1", "cidr": "10.0.0.0/16"},
				"accepter": {"vpc_id": "vpc-2", "cidr": "10.1.0.0/16"}}]
		}
	}`)

	doc, err := svc.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Region != "eu-west-1" {
		t.Fatalf("got region %q", doc.Region)
	}
	if doc.Summary["total_vpcs"] != 1 {
		t.Fatalf("got summary %v", doc.Summary)
	}
	if doc.VPCs[0].InternetGateway == nil || doc.VPCs[0].InternetGateway.IgwID != "igw-1" {
		t.Fatalf("internet gateway not decoded: %+v", doc.VPCs[0].InternetGateway)
	}
	if len(doc.Connectivity.VPCPeering) != 1 || doc.Connectivity.VPCPeering[0].Accepter.VpcID != "vpc-2" {
		t.Fatalf("peering not decoded: %+v", doc.Connectivity.VPCPeering)
	}
}
