package model

// RiskVerdict is the classification result for a single NACL rule.
type RiskVerdict struct {
	Level  string // "critical", "high", "medium", "low", or "none"
	Reason string
}

// RuleIssue is a flagged rule inside a subnet's security score.
type RuleIssue struct {
	RuleNumber int
	Reason     string
	Rule       NaclRule
}

// SubnetSecurityScore aggregates the verdicts of a subnet's inbound rules.
// Risks is keyed by severity level; "none" verdicts are never bucketed, so
// an Overall of "secure" means zero entries across all buckets.
type SubnetSecurityScore struct {
	Overall     string // "critical", "high", "medium", "low", or "secure"
	Risks       map[string][]RuleIssue
	TotalIssues int
}

// SubnetIssue is a flagged rule attributed to its subnet inside a VPC
// security summary.
type SubnetIssue struct {
	SubnetName string
	SubnetID   string
	RuleNumber int
	Reason     string
}

// VpcSecuritySummary flattens all subnet scores of a VPC, keyed by the
// same severity levels as SubnetSecurityScore.
type VpcSecuritySummary struct {
	Overall     string
	Risks       map[string][]SubnetIssue
	TotalIssues int
}

// NaclBinding is the NACL resolved for a subnet. The rule slices are the
// full, untruncated rule sets; display truncation is a renderer policy.
type NaclBinding struct {
	NaclID        string
	NaclName      string
	IsDefault     bool
	InboundRules  []NaclRule
	OutboundRules []NaclRule
}

// RuleView is a rule annotated with its verdict and a human-readable
// explanation, precomputed by the engine so renderers never re-derive
// severity logic.
type RuleView struct {
	Rule        NaclRule
	Level       string // verdict level, "none" when the rule is not flagged
	Reason      string
	Explanation string
}

// NaclView is the renderable form of a subnet's NACL binding. Rule lists
// are already filtered of the reserved default-deny entry and truncated to
// the configured display limit.
type NaclView struct {
	NaclID        string
	NaclName      string
	IsDefault     bool
	InboundRules  []RuleView
	OutboundRules []RuleView
	TotalInbound  int
	TotalOutbound int
}

// SubnetView pairs a subnet with its NACL and security score.
type SubnetView struct {
	Subnet  Subnet
	HasNacl bool
	Nacl    NaclView
	Score   SubnetSecurityScore
}

// VpcView is the fully analyzed, render-ready form of a VPC.
type VpcView struct {
	VPC            VPC
	PublicSubnets  []SubnetView
	PrivateSubnets []SubnetView
	Summary        VpcSecuritySummary
}

// RenderReportInput carries everything renderers need for one report run.
type RenderReportInput struct {
	Title            string
	Region           string
	Timestamp        string
	GeneratedAt      string
	Summary          map[string]int
	VPCs             []VpcView
	Connectivity     Connectivity
	RuleDisplayLimit int
}

// NetworkReportJSON is the machine-readable report document.
type NetworkReportJSON struct {
	Region      string              `json:"region"`
	Timestamp   string              `json:"timestamp,omitempty"`
	GeneratedAt string              `json:"generated_at"`
	HasFindings bool                `json:"has_findings"`
	Summary     ReportSummaryJSON   `json:"summary"`
	VPCs        []VpcSummaryJSON    `json:"vpcs"`
	Issues      []SecurityIssueJSON `json:"issues"`
}

// ReportSummaryJSON provides counts of findings by severity.
type ReportSummaryJSON struct {
	TotalIssues int `json:"total_issues"`
	Critical    int `json:"critical"`
	High        int `json:"high"`
	Medium      int `json:"medium"`
	Low         int `json:"low"`
}

// VpcSummaryJSON is the per-VPC rollup in the JSON report.
type VpcSummaryJSON struct {
	VpcID       string              `json:"vpc_id"`
	Name        string              `json:"name"`
	CidrBlock   string              `json:"cidr_block"`
	Overall     string              `json:"overall"`
	TotalIssues int                 `json:"total_issues"`
	Subnets     []SubnetSummaryJSON `json:"subnets"`
}

// SubnetSummaryJSON is the per-subnet rollup in the JSON report.
type SubnetSummaryJSON struct {
	SubnetID    string `json:"subnet_id"`
	Name        string `json:"name"`
	SubnetType  string `json:"subnet_type"`
	NaclID      string `json:"nacl_id,omitempty"`
	Overall     string `json:"overall"`
	TotalIssues int    `json:"total_issues"`
}

// SecurityIssueJSON is a single flagged rule in the JSON report.
type SecurityIssueJSON struct {
	VpcID      string `json:"vpc_id"`
	SubnetID   string `json:"subnet_id"`
	SubnetName string `json:"subnet_name"`
	RuleNumber int    `json:"rule_number"`
	Severity   string `json:"severity"`
	Reason     string `json:"reason"`
}
