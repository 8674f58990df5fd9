// Package htmlreport renders the network report as a standalone HTML
// document.
package htmlreport

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/Masterminds/sprig/v3"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
)

// SeverityLevels is the render order for risk buckets, most severe first.
var SeverityLevels = []string{"critical", "high", "medium", "low"}

var levelIcons = map[string]string{
	"critical": "🚨",
	"high":     "⚠️",
	"medium":   "⚡",
	"low":      "ℹ️",
	"secure":   "✅",
}

var overallHeadings = map[string]string{
	"critical": "CRITICAL SECURITY ISSUES",
	"high":     "HIGH SECURITY RISKS",
	"medium":   "MEDIUM SECURITY CONCERNS",
	"low":      "LOW SECURITY NOTES",
}

// LevelIcon returns the emoji badge for a severity level.
func LevelIcon(level string) string {
	if icon, ok := levelIcons[level]; ok {
		return icon
	}
	return "❓"
}

// OverallHeading returns the headline text for a VPC's worst severity.
func OverallHeading(level string) string {
	if heading, ok := overallHeadings[level]; ok {
		return heading
	}
	return "SECURITY NOTES"
}

func funcMap() template.FuncMap {
	funcs := sprig.HtmlFuncMap()
	funcs["levelIcon"] = LevelIcon
	funcs["overallHeading"] = OverallHeading
	funcs["severityLevels"] = func() []string { return SeverityLevels }
	funcs["riskClass"] = func(level string) string {
		if level == "none" || level == "" {
			return ""
		}
		return "security-risk " + level
	}
	funcs["subnetName"] = func(vpc model.VPC, subnetID string) string {
		for _, subnet := range vpc.Subnets {
			if subnet.SubnetID == subnetID {
				return subnet.Name
			}
		}
		return "N/A"
	}
	funcs["activeClass"] = func(state string) string {
		if state == "active" || state == "available" {
			return "active"
		}
		return "inactive"
	}
	return funcs
}

var reportTmpl = template.Must(template.New("report").Funcs(funcMap()).Parse(reportTemplate))

// Generate renders the full HTML report.
func Generate(input model.RenderReportInput) (string, error) {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, input); err != nil {
		return "", fmt.Errorf("failed to execute HTML template: %w", err)
	}
	return strings.TrimLeft(buf.String(), "\n"), nil
}
