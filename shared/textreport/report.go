// Package textreport renders the network report as plain text with
// formatted tables, suitable for terminals and log archives.
package textreport

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
	"github.com/shankarnarayanb/aws-network-visualizer/shared/htmlreport"
)

// Generate renders the full text report.
func Generate(input model.RenderReportInput) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "🌐 %s\n", input.Title)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", len(input.Title)+3))
	fmt.Fprintf(&b, "Region: %s | Discovered: %s | Generated: %s\n\n", input.Region, input.Timestamp, input.GeneratedAt)

	writeSummary(&b, input.Summary)

	for _, vpc := range input.VPCs {
		writeVpcSection(&b, vpc)
	}

	writeConnectivity(&b, input.Connectivity)

	return b.String(), nil
}

func writeSummary(b *strings.Builder, summary map[string]int) {
	fmt.Fprintln(b, "📊 Summary")

	t := table.NewWriter()
	t.SetOutputMirror(b)
	t.AppendHeader(table.Row{"Resource", "Count"})
	t.AppendRow(table.Row{"VPCs", summary["total_vpcs"]})
	t.AppendRow(table.Row{"Public Subnets", summary["public_subnets"]})
	t.AppendRow(table.Row{"Private Subnets", summary["private_subnets"]})
	t.AppendRow(table.Row{"NAT Gateways", summary["nat_gateways"]})
	t.SetStyle(table.StyleRounded)
	t.Render()
	fmt.Fprintln(b)
}

func writeVpcSection(b *strings.Builder, vpc model.VpcView) {
	fmt.Fprintf(b, "━━━ VPC: %s (%s, %s) ━━━\n\n", vpc.VPC.Name, vpc.VPC.VpcID, vpc.VPC.CidrBlock)

	writeVpcSecuritySummary(b, vpc.Summary)
	writeFlowSummary(b, vpc)

	if len(vpc.PublicSubnets) > 0 {
		fmt.Fprintln(b, "🌐 Public Subnets")
		for _, subnet := range vpc.PublicSubnets {
			writeSubnet(b, subnet)
		}
	}

	if len(vpc.PrivateSubnets) > 0 {
		fmt.Fprintln(b, "🔒 Private Subnets")
		for _, subnet := range vpc.PrivateSubnets {
			writeSubnet(b, subnet)
		}
	}

	writeRouteTables(b, vpc.VPC)
}

func writeVpcSecuritySummary(b *strings.Builder, summary model.VpcSecuritySummary) {
	if summary.TotalIssues == 0 {
		fmt.Fprintln(b, "✅ No Security Issues Detected")
		fmt.Fprintln(b)
		return
	}

	fmt.Fprintf(b, "%s %s - %d Issue(s) Found\n",
		htmlreport.LevelIcon(summary.Overall),
		htmlreport.OverallHeading(summary.Overall),
		summary.TotalIssues)

	for _, level := range htmlreport.SeverityLevels {
		issues := summary.Risks[level]
		if len(issues) == 0 {
			continue
		}
		fmt.Fprintf(b, "  %s %s (%d)\n", htmlreport.LevelIcon(level), strings.ToUpper(level), len(issues))
		for _, issue := range issues {
			fmt.Fprintf(b, "    - %s - Rule #%d: %s\n", issue.SubnetName, issue.RuleNumber, issue.Reason)
		}
	}
	fmt.Fprintln(b)
}

func writeFlowSummary(b *strings.Builder, vpc model.VpcView) {
	fmt.Fprintln(b, "📊 Network Flow")
	if vpc.VPC.InternetGateway != nil {
		fmt.Fprintf(b, "  🌐 Internet → Internet Gateway (%s)\n", vpc.VPC.InternetGateway.IgwID)
	}
	if vpc.VPC.VpnGateway != nil {
		fmt.Fprintf(b, "  🔒 On-Premises → VPN Gateway (%s)\n", vpc.VPC.VpnGateway.VgwID)
	}
	fmt.Fprintf(b, "  VPC %s (%s)\n", vpc.VPC.Name, vpc.VPC.CidrBlock)
	if n := len(vpc.PublicSubnets); n > 0 {
		fmt.Fprintf(b, "  → %d public subnet(s) with direct internet access\n", n)
	}
	if n := len(vpc.VPC.NatGateways); n > 0 {
		fmt.Fprintf(b, "  → %d NAT gateway(s), outbound only\n", n)
	}
	if n := len(vpc.PrivateSubnets); n > 0 {
		fmt.Fprintf(b, "  → %d private subnet(s) with no direct internet access\n", n)
	}
	fmt.Fprintln(b)
}

func writeSubnet(b *strings.Builder, subnet model.SubnetView) {
	badge := ""
	if subnet.HasNacl {
		badge = fmt.Sprintf(" [%s %s]", htmlreport.LevelIcon(subnet.Score.Overall), strings.ToUpper(subnet.Score.Overall))
	}
	fmt.Fprintf(b, "\n  %s%s\n", subnet.Subnet.Name, badge)

	t := table.NewWriter()
	t.SetOutputMirror(b)
	t.AppendRow(table.Row{"Subnet ID", subnet.Subnet.SubnetID})
	t.AppendRow(table.Row{"CIDR Block", subnet.Subnet.CidrBlock})
	t.AppendRow(table.Row{"Availability Zone", subnet.Subnet.AvailabilityZone})
	t.AppendRow(table.Row{"Available IPs", subnet.Subnet.AvailableIPCount})
	t.SetStyle(table.StyleRounded)
	t.Render()

	if subnet.HasNacl && subnet.Score.TotalIssues > 0 {
		fmt.Fprintf(b, "  🛡️ Security Issues Detected (%d)\n", subnet.Score.TotalIssues)
		for _, level := range htmlreport.SeverityLevels {
			for _, issue := range subnet.Score.Risks[level] {
				fmt.Fprintf(b, "    - Rule #%d: %s\n", issue.RuleNumber, issue.Reason)
			}
		}
	}

	if subnet.HasNacl {
		defaultText := ""
		if subnet.Nacl.IsDefault {
			defaultText = " (Default)"
		}
		fmt.Fprintf(b, "  🛡️ Network ACL: %s%s\n", subnet.Nacl.NaclName, defaultText)
		writeRules(b, "Inbound", subnet.Nacl.InboundRules, subnet.Nacl.TotalInbound, "from")
		writeRules(b, "Outbound", subnet.Nacl.OutboundRules, subnet.Nacl.TotalOutbound, "to")
	}
}

func writeRules(b *strings.Builder, label string, rules []model.RuleView, total int, direction string) {
	fmt.Fprintf(b, "    %s Rules:\n", label)
	for _, rule := range rules {
		marker := ""
		if rule.Level != "none" && rule.Level != "" {
			marker = fmt.Sprintf(" %s", htmlreport.LevelIcon(rule.Level))
		}
		fmt.Fprintf(b, "      #%d: %s %s %s %s port %s%s\n",
			rule.Rule.RuleNumber,
			strings.ToUpper(rule.Rule.Action),
			rule.Rule.Protocol,
			direction,
			rule.Rule.CIDR,
			rule.Rule.PortRange,
			marker)
		fmt.Fprintf(b, "        %s\n", rule.Explanation)
	}
	if total > len(rules) {
		fmt.Fprintf(b, "      … and %d more rule(s)\n", total-len(rules))
	}
}

func writeRouteTables(b *strings.Builder, vpc model.VPC) {
	if len(vpc.RouteTables) == 0 {
		return
	}

	fmt.Fprintln(b, "\n🗺️ Route Tables")
	for _, rt := range vpc.RouteTables {
		main := ""
		if rt.IsMain {
			main = " (Main)"
		}
		fmt.Fprintf(b, "\n  %s%s - %s, %d associated subnet(s)\n", rt.Name, main, rt.RouteTableID, len(rt.AssociatedSubnets))

		t := table.NewWriter()
		t.SetOutputMirror(b)
		t.AppendHeader(table.Row{"Destination", "Target", "Type"})
		for _, route := range rt.Routes {
			t.AppendRow(table.Row{route.Destination, route.Target, route.TargetType})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}
	fmt.Fprintln(b)
}

func writeConnectivity(b *strings.Builder, conn model.Connectivity) {
	fmt.Fprintln(b, "🔗 Network Connectivity")

	if len(conn.VPCPeering) > 0 {
		fmt.Fprintln(b, "\nVPC Peering Connections")
		t := table.NewWriter()
		t.SetOutputMirror(b)
		t.AppendHeader(table.Row{"Peering ID", "Name", "Requester", "Accepter", "Status"})
		for _, peer := range conn.VPCPeering {
			t.AppendRow(table.Row{
				peer.PeeringID,
				peer.Name,
				fmt.Sprintf("%s (%s)", peer.Requester.VpcID, peer.Requester.CIDR),
				fmt.Sprintf("%s (%s)", peer.Accepter.VpcID, peer.Accepter.CIDR),
				peer.Status,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}

	if len(conn.VPNConnections) > 0 {
		fmt.Fprintln(b, "\nVPN Connections")
		t := table.NewWriter()
		t.SetOutputMirror(b)
		t.AppendHeader(table.Row{"VPN ID", "Name", "State", "Type", "Customer Gateway IP"})
		for _, vpn := range conn.VPNConnections {
			t.AppendRow(table.Row{vpn.VpnID, vpn.Name, vpn.State, vpn.Type, vpn.CustomerGatewayIP})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}

	if len(conn.TransitGateways) > 0 {
		fmt.Fprintln(b, "\nTransit Gateways")
		for _, tgw := range conn.TransitGateways {
			fmt.Fprintf(b, "  %s (%s) - %s, %d attachment(s)\n", tgw.Name, tgw.TgwID, tgw.State, len(tgw.Attachments))
			if len(tgw.Attachments) == 0 {
				continue
			}
			t := table.NewWriter()
			t.SetOutputMirror(b)
			t.AppendHeader(table.Row{"Resource Type", "Resource ID", "State"})
			for _, att := range tgw.Attachments {
				t.AppendRow(table.Row{att.ResourceType, att.ResourceID, att.State})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
		}
	}

	if len(conn.VPCEndpoints) > 0 {
		fmt.Fprintln(b, "\nVPC Endpoints")
		t := table.NewWriter()
		t.SetOutputMirror(b)
		t.AppendHeader(table.Row{"Endpoint ID", "Service", "VPC", "Type", "State"})
		for _, ep := range conn.VPCEndpoints {
			t.AppendRow(table.Row{ep.EndpointID, ep.ServiceName, ep.VpcID, ep.EndpointType, ep.State})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}
}
