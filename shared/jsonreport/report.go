// Package jsonreport renders the network report as a machine-readable
// JSON document.
package jsonreport

import (
	"encoding/json"
	"fmt"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
	"github.com/shankarnarayanb/aws-network-visualizer/service/risk"
	"github.com/shankarnarayanb/aws-network-visualizer/shared/htmlreport"
)

// Generate renders the full JSON report.
func Generate(input model.RenderReportInput) (string, error) {
	report := Build(input)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return string(data) + "\n", nil
}

// Build assembles the JSON report document from the render input.
func Build(input model.RenderReportInput) model.NetworkReportJSON {
	report := model.NetworkReportJSON{
		Region:      input.Region,
		Timestamp:   input.Timestamp,
		GeneratedAt: input.GeneratedAt,
		VPCs:        []model.VpcSummaryJSON{},
		Issues:      []model.SecurityIssueJSON{},
	}

	for _, vpc := range input.VPCs {
		vpcSummary := model.VpcSummaryJSON{
			VpcID:       vpc.VPC.VpcID,
			Name:        vpc.VPC.Name,
			CidrBlock:   vpc.VPC.CidrBlock,
			Overall:     vpc.Summary.Overall,
			TotalIssues: vpc.Summary.TotalIssues,
			Subnets:     []model.SubnetSummaryJSON{},
		}

		for _, subnet := range append(vpc.PublicSubnets, vpc.PrivateSubnets...) {
			vpcSummary.Subnets = append(vpcSummary.Subnets, subnetSummary(subnet))
		}
		report.VPCs = append(report.VPCs, vpcSummary)

		for _, level := range htmlreport.SeverityLevels {
			issues := vpc.Summary.Risks[level]
			switch level {
			case "critical":
				report.Summary.Critical += len(issues)
			case "high":
				report.Summary.High += len(issues)
			case "medium":
				report.Summary.Medium += len(issues)
			case "low":
				report.Summary.Low += len(issues)
			}

			for _, issue := range issues {
				report.Issues = append(report.Issues, model.SecurityIssueJSON{
					VpcID:      vpc.VPC.VpcID,
					SubnetID:   issue.SubnetID,
					SubnetName: issue.SubnetName,
					RuleNumber: issue.RuleNumber,
					Severity:   level,
					Reason:     issue.Reason,
				})
			}
		}
		report.Summary.TotalIssues += vpc.Summary.TotalIssues
	}

	report.HasFindings = report.Summary.TotalIssues > 0
	return report
}

func subnetSummary(subnet model.SubnetView) model.SubnetSummaryJSON {
	summary := model.SubnetSummaryJSON{
		SubnetID:   subnet.Subnet.SubnetID,
		Name:       subnet.Subnet.Name,
		SubnetType: subnet.Subnet.SubnetType,
		Overall:    risk.OverallSecure,
	}
	if subnet.HasNacl {
		summary.NaclID = subnet.Nacl.NaclID
		summary.Overall = subnet.Score.Overall
		summary.TotalIssues = subnet.Score.TotalIssues
	}
	return summary
}
