package risk

import "github.com/shankarnarayanb/aws-network-visualizer/model"

// internetCIDR exposes a rule to the entire public Internet.
const internetCIDR = "0.0.0.0/0"

// Full-range port markers used interchangeably in discovery data.
const (
	allPortsRange  = "0-65535"
	allPortsMarker = "All"
)

// portVerdict maps an exact port_range value to its verdict.
type portVerdict struct {
	portRange string
	level     string
	reason    string
}

// internetVerdicts is the ordered verdict table for allow rules that are
// inbound from 0.0.0.0/0. First match wins; anything not listed is "none".
var internetVerdicts = []portVerdict{
	// Critical - administrative and database access
	{"22", LevelCritical, "🚨 CRITICAL: SSH port 22 open to entire Internet! This allows anyone to attempt SSH access. Restrict to specific IPs."},
	{"3389", LevelCritical, "🚨 CRITICAL: RDP port 3389 open to entire Internet! This allows anyone to attempt remote desktop access. Restrict to specific IPs."},
	{"3306", LevelCritical, "🚨 CRITICAL: MySQL port 3306 exposed to Internet! Database should not be publicly accessible. Use private subnets."},
	{"5432", LevelCritical, "🚨 CRITICAL: PostgreSQL port 5432 exposed to Internet! Database should not be publicly accessible. Use private subnets."},
	{"1521", LevelCritical, "🚨 CRITICAL: Oracle port 1521 exposed to Internet! Database should not be publicly accessible. Use private subnets."},
	{"27017", LevelCritical, "🚨 CRITICAL: MongoDB port 27017 exposed to Internet! Database should not be publicly accessible. Use private subnets."},
	{"6379", LevelCritical, "🚨 CRITICAL: Redis port 6379 exposed to Internet! Cache/database should not be publicly accessible. Use private subnets."},
	{"5984", LevelCritical, "🚨 CRITICAL: CouchDB port 5984 exposed to Internet! Database should not be publicly accessible."},
	{"9200", LevelCritical, "🚨 CRITICAL: Elasticsearch exposed to Internet! Search engine should not be publicly accessible."},
	{"9300", LevelCritical, "🚨 CRITICAL: Elasticsearch exposed to Internet! Search engine should not be publicly accessible."},
	// Critical - all ports open
	{allPortsRange, LevelCritical, "🚨 CRITICAL: ALL ports open to Internet! This is extremely permissive and insecure. Restrict to specific required ports."},
	{allPortsMarker, LevelCritical, "🚨 CRITICAL: ALL ports open to Internet! This is extremely permissive and insecure. Restrict to specific required ports."},
	{"23", LevelCritical, "🚨 CRITICAL: Telnet port 23 open to Internet! Telnet is unencrypted and insecure. Use SSH instead."},
	// High - insecure protocols and ransomware targets
	{"445", LevelHigh, "⚠️ HIGH: SMB/NetBIOS port exposed to Internet. Common ransomware and malware target. Block immediately."},
	{"139", LevelHigh, "⚠️ HIGH: SMB/NetBIOS port exposed to Internet. Common ransomware and malware target. Block immediately."},
	{"21", LevelHigh, "⚠️ HIGH: FTP port 21 open to Internet. FTP is unencrypted. Use SFTP/FTPS instead."},
	{"25", LevelHigh, "⚠️ HIGH: SMTP port 25 exposed to Internet. Common spam relay vector. Should be restricted."},
	{"53", LevelHigh, "⚠️ HIGH: DNS port 53 open to Internet. Can be used for DNS amplification attacks."},
	{"135", LevelHigh, "⚠️ HIGH: Windows RPC/NetBIOS ports exposed. Common attack vector. Block from Internet."},
	{"137", LevelHigh, "⚠️ HIGH: Windows RPC/NetBIOS ports exposed. Common attack vector. Block from Internet."},
	{"138", LevelHigh, "⚠️ HIGH: Windows RPC/NetBIOS ports exposed. Common attack vector. Block from Internet."},
	// Medium - admin interfaces and development ports
	{"8080", LevelMedium, "⚠️ MEDIUM: Development/admin port exposed to Internet. Should typically be restricted to internal access."},
	{"8000", LevelMedium, "⚠️ MEDIUM: Development/admin port exposed to Internet. Should typically be restricted to internal access."},
	{"8443", LevelMedium, "⚠️ MEDIUM: Alternative HTTPS/admin port exposed. Verify if intentional and restrict if possible."},
	{"8888", LevelMedium, "⚠️ MEDIUM: Alternative HTTPS/admin port exposed. Verify if intentional and restrict if possible."},
	{"9090", LevelMedium, "⚠️ MEDIUM: Management/monitoring port exposed. Should be restricted to authorized networks."},
	{"9091", LevelMedium, "⚠️ MEDIUM: Management/monitoring port exposed. Should be restricted to authorized networks."},
	{"5000", LevelMedium, "⚠️ MEDIUM: Common development port exposed. Review if public access is required."},
	// Low - HTTP
	{"80", LevelLow, "ℹ️ Standard HTTP port open. Consider using HTTPS (443) for encrypted traffic."},
	// Acceptable - HTTPS. Reassuring rationale, not a finding.
	{"443", LevelNone, "✅ Standard HTTPS port for web traffic. This is acceptable."},
}

// Classify returns the risk verdict for a single NACL rule. Deny rules
// never produce a risk, and only inbound rules get tiered analysis.
func (s *service) Classify(rule model.NaclRule, direction string) model.RiskVerdict {
	verdict := model.RiskVerdict{Level: LevelNone}

	if rule.Action != "allow" || direction != DirectionInbound {
		return verdict
	}

	if rule.CIDR == internetCIDR {
		for _, v := range internetVerdicts {
			if rule.PortRange == v.portRange {
				return model.RiskVerdict{Level: v.level, Reason: v.reason}
			}
		}
		return verdict
	}

	// Any-port exposure is flagged even when the source is not the public
	// Internet, at lower severity.
	if rule.PortRange == allPortsRange || rule.PortRange == allPortsMarker {
		return model.RiskVerdict{
			Level:  LevelMedium,
			Reason: "⚡ MEDIUM: All ports open. Consider restricting to specific required ports for better security.",
		}
	}

	return verdict
}
