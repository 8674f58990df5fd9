// Package markdownreport renders the network report as GitHub-flavored
// markdown.
package markdownreport

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
	"github.com/shankarnarayanb/aws-network-visualizer/shared/htmlreport"
)

func funcMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["levelIcon"] = htmlreport.LevelIcon
	funcs["overallHeading"] = htmlreport.OverallHeading
	funcs["severityLevels"] = func() []string { return htmlreport.SeverityLevels }
	funcs["subnetName"] = func(vpc model.VPC, subnetID string) string {
		for _, subnet := range vpc.Subnets {
			if subnet.SubnetID == subnetID {
				return subnet.Name
			}
		}
		return "N/A"
	}
	return funcs
}

var reportTmpl = template.Must(template.New("report").Funcs(funcMap()).Parse(reportTemplate))

// Generate renders the full markdown report.
func Generate(input model.RenderReportInput) (string, error) {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, input); err != nil {
		return "", fmt.Errorf("failed to execute markdown template: %w", err)
	}
	return strings.TrimLeft(buf.String(), "\n"), nil
}

const reportTemplate = `# 🌐 {{.Title}}

**Region:** {{.Region}} | **Discovered:** {{.Timestamp}} | **Generated:** {{.GeneratedAt}}

## 📊 Summary

| Resource | Count |
|----------|-------|
| VPCs | {{index .Summary "total_vpcs"}} |
| Public Subnets | {{index .Summary "public_subnets"}} |
| Private Subnets | {{index .Summary "private_subnets"}} |
| NAT Gateways | {{index .Summary "nat_gateways"}} |
{{range .VPCs}}
## VPC: {{.VPC.Name}}

- **VPC ID:** ` + "`{{.VPC.VpcID}}`" + `
- **CIDR:** ` + "`{{.VPC.CidrBlock}}`" + `
{{if eq .Summary.TotalIssues 0}}
✅ **No Security Issues Detected** - all Network ACL rules appear to follow security best practices.
{{else}}
### {{levelIcon .Summary.Overall}} {{overallHeading .Summary.Overall}} - {{.Summary.TotalIssues}} Issue(s) Found
{{$summary := .Summary}}
{{- range $level := severityLevels}}{{with index $summary.Risks $level}}
**{{levelIcon $level}} {{upper $level}} ({{len .}})**
{{range .}}
- **{{.SubnetName}}** - Rule #{{.RuleNumber}}: {{.Reason}}
{{- end}}
{{end}}{{end}}
{{- end}}
{{- if .PublicSubnets}}

### 🌐 Public Subnets
{{range .PublicSubnets}}{{template "subnet" .}}{{end}}
{{- end}}
{{- if .PrivateSubnets}}

### 🔒 Private Subnets
{{range .PrivateSubnets}}{{template "subnet" .}}{{end}}
{{- end}}

### 🗺️ Route Tables
{{$vpc := .VPC}}
{{- range .VPC.RouteTables}}

**{{.Name}}{{if .IsMain}} (Main){{end}}** (` + "`{{.RouteTableID}}`" + `)
{{- if .AssociatedSubnets}}

Associated subnets:
{{- range .AssociatedSubnets}}
- {{subnetName $vpc .}} (` + "`{{.}}`" + `)
{{- end}}
{{- end}}

| Destination | Target | Type |
|-------------|--------|------|
{{- range .Routes}}
| ` + "`{{.Destination}}`" + ` | ` + "`{{.Target}}`" + ` | {{.TargetType}} |
{{- end}}
{{- end}}
{{end}}
## 🔗 Network Connectivity
{{- with .Connectivity.VPCPeering}}

### VPC Peering Connections

| Peering ID | Name | Requester | Accepter | Status |
|------------|------|-----------|----------|--------|
{{- range .}}
| ` + "`{{.PeeringID}}`" + ` | {{.Name}} | {{.Requester.VpcID}} ({{.Requester.CIDR}}) | {{.Accepter.VpcID}} ({{.Accepter.CIDR}}) | {{.Status}} |
{{- end}}
{{- end}}
{{- with .Connectivity.VPNConnections}}

### VPN Connections

| VPN ID | Name | State | Type | Customer Gateway IP |
|--------|------|-------|------|---------------------|
{{- range .}}
| ` + "`{{.VpnID}}`" + ` | {{.Name}} | {{.State}} | {{.Type}} | {{.CustomerGatewayIP}} |
{{- end}}
{{- end}}
{{- with .Connectivity.TransitGateways}}

### Transit Gateways
{{- range .}}

**{{.Name}}** (` + "`{{.TgwID}}`" + `) - {{.State}}, {{len .Attachments}} attachment(s)
{{- if .Attachments}}

| Resource Type | Resource ID | State |
|---------------|-------------|-------|
{{- range .Attachments}}
| {{.ResourceType}} | ` + "`{{.ResourceID}}`" + ` | {{.State}} |
{{- end}}
{{- end}}
{{- end}}
{{- end}}
{{- with .Connectivity.VPCEndpoints}}

### VPC Endpoints

| Endpoint ID | Service | VPC | Type | State |
|-------------|---------|-----|------|-------|
{{- range .}}
| ` + "`{{.EndpointID}}`" + ` | {{.ServiceName}} | ` + "`{{.VpcID}}`" + ` | {{.EndpointType}} | {{.State}} |
{{- end}}
{{- end}}

{{define "subnet"}}
#### {{.Subnet.Name}}{{if .HasNacl}} {{levelIcon .Score.Overall}} **{{upper .Score.Overall}}**{{end}}

| Field | Value |
|-------|-------|
| Subnet ID | ` + "`{{.Subnet.SubnetID}}`" + ` |
| CIDR Block | ` + "`{{.Subnet.CidrBlock}}`" + ` |
| Availability Zone | {{.Subnet.AvailabilityZone}} |
| Available IPs | {{.Subnet.AvailableIPCount}} |
{{- if and .HasNacl (gt .Score.TotalIssues 0)}}

🛡️ **Security Issues Detected ({{.Score.TotalIssues}})**
{{$score := .Score}}
{{- range $level := severityLevels}}{{range index $score.Risks $level}}
- **Rule #{{.RuleNumber}}:** {{.Reason}}
{{- end}}{{end}}
{{- end}}
{{- if .HasNacl}}

🛡️ **Network ACL:** {{.Nacl.NaclName}}{{if .Nacl.IsDefault}} (Default){{end}}

Inbound rules:
{{- range .Nacl.InboundRules}}
- ` + "`#{{.Rule.RuleNumber}}: {{upper .Rule.Action}} {{.Rule.Protocol}} from {{.Rule.CIDR}} port {{.Rule.PortRange}}`" + `{{if ne .Level "none"}} {{levelIcon .Level}}{{end}} - {{.Explanation}}
{{- end}}
{{- if gt .Nacl.TotalInbound (len .Nacl.InboundRules)}}
- … and {{sub .Nacl.TotalInbound (len .Nacl.InboundRules)}} more inbound rule(s)
{{- end}}

Outbound rules:
{{- range .Nacl.OutboundRules}}
- ` + "`#{{.Rule.RuleNumber}}: {{upper .Rule.Action}} {{.Rule.Protocol}} to {{.Rule.CIDR}} port {{.Rule.PortRange}}`" + ` - {{.Explanation}}
{{- end}}
{{- if gt .Nacl.TotalOutbound (len .Nacl.OutboundRules)}}
- … and {{sub .Nacl.TotalOutbound (len .Nacl.OutboundRules)}} more outbound rule(s)
{{- end}}
{{- end}}
{{end}}`
