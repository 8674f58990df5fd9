package explain

import (
	"fmt"
	"strings"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
)

// ExplainCIDR interprets a CIDR block. Checks run in a fixed priority
// order: exact Internet match, RFC 1918 prefixes, then prefix-length
// buckets.
func (s *service) ExplainCIDR(cidr string) string {
	switch {
	case cidr == "0.0.0.0/0":
		return "🌐 Internet (all IPv4 addresses)"
	case strings.HasPrefix(cidr, "10."):
		return "🏢 Internal VPC network"
	case strings.HasPrefix(cidr, "172.16.") || strings.HasPrefix(cidr, "172.17."):
		return "🏢 Internal network (RFC 1918)"
	case strings.HasPrefix(cidr, "192.168."):
		return "🏠 Private network (RFC 1918)"
	case strings.Contains(cidr, "/32"):
		return "🖥️ Single IP address"
	case strings.Contains(cidr, "/28"):
		return "📦 Small subnet (16 IPs)"
	case strings.Contains(cidr, "/24"):
		return "📦 Standard subnet (256 IPs)"
	case strings.Contains(cidr, "/22"):
		return "📦 Medium subnet (1024 IPs)"
	case strings.Contains(cidr, "/16"):
		return "📦 Large subnet (65k IPs)"
	}
	return "📍 Specific network"
}

// ExplainPort interprets a port range value.
func (s *service) ExplainPort(portRange, protocol string) string {
	switch portRange {
	case "All":
		return "🔓 All ports/protocols"
	case "22":
		return "🔐 SSH (Secure Shell)"
	case "80":
		return "🌐 HTTP (Web)"
	case "443":
		return "🔒 HTTPS (Secure Web)"
	case "3389":
		return "🖥️ RDP (Remote Desktop)"
	case "3306":
		return "🗄️ MySQL Database"
	case "5432":
		return "🗄️ PostgreSQL Database"
	case "1521":
		return "🗄️ Oracle Database"
	case "8080":
		return "🌐 Alternative HTTP"
	case "8443":
		return "🔒 Alternative HTTPS"
	case "8000":
		return "🔧 Development server"
	case "0-65535":
		return "🔓 All TCP/UDP ports"
	case "32768-65535":
		return "🔄 Ephemeral ports (return traffic)"
	}

	if strings.Contains(portRange, "-") {
		return fmt.Sprintf("📊 Port range %s", portRange)
	}
	return fmt.Sprintf("🔌 Port %s", portRange)
}

// ExplainRule produces a one-line explanation of what a rule does,
// special-casing the common (cidr, port_range) patterns before falling
// back to a generic composition.
func (s *service) ExplainRule(rule model.NaclRule, direction string) string {
	cidrExplain := s.ExplainCIDR(rule.CIDR)
	portExplain := s.ExplainPort(rule.PortRange, rule.Protocol)

	if direction == "inbound" {
		if rule.Action != "allow" {
			return fmt.Sprintf("🚫 Blocks %s from %s", portExplain, cidrExplain)
		}
		switch {
		case rule.CIDR == "0.0.0.0/0" && rule.PortRange == "0-65535":
			return "⚠️ Allows ALL traffic from Internet (very permissive)"
		case rule.CIDR == "0.0.0.0/0" && rule.PortRange == "22":
			return "⚠️ SSH accessible from Internet (security concern)"
		case rule.CIDR == "0.0.0.0/0" && rule.PortRange == "443":
			return "✅ HTTPS accessible from Internet (standard for web)"
		case rule.CIDR == "0.0.0.0/0" && rule.PortRange == "80":
			return "✅ HTTP accessible from Internet (standard for web)"
		case rule.PortRange == "32768-65535":
			return "✅ Allows return traffic (ephemeral ports)"
		case strings.HasPrefix(rule.CIDR, "10.") || strings.HasPrefix(rule.CIDR, "172."):
			return fmt.Sprintf("✅ Allows %s from internal network", portExplain)
		}
		return fmt.Sprintf("%s → %s", cidrExplain, portExplain)
	}

	// outbound
	if rule.Action != "allow" {
		return fmt.Sprintf("🚫 Blocks outbound to %s", cidrExplain)
	}
	switch {
	case rule.CIDR == "0.0.0.0/0" && rule.PortRange == "All":
		return "✅ Allows ALL outbound traffic (standard)"
	case rule.CIDR == "0.0.0.0/0" && rule.PortRange == "443":
		return "✅ Can make HTTPS requests to Internet"
	case rule.PortRange == "32768-65535":
		return "✅ Allows response traffic (ephemeral ports)"
	}
	return fmt.Sprintf("%s → %s", portExplain, cidrExplain)
}
