package htmlreport

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>AWS Network Report - {{.Region}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            line-height: 1.6;
            color: #333;
            background-color: #f5f5f5;
            padding: 20px;
        }

        .container {
            max-width: 1600px;
            margin: 0 auto;
            background: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }

        h1 {
            color: #232f3e;
            border-bottom: 3px solid #ff9900;
            padding-bottom: 10px;
            margin-bottom: 30px;
        }

        h2 {
            color: #232f3e;
            margin-top: 40px;
            margin-bottom: 20px;
            padding: 10px;
            background: #f8f9fa;
            border-left: 4px solid #ff9900;
        }

        h3 {
            color: #232f3e;
            margin-top: 25px;
            margin-bottom: 15px;
        }

        .summary-cards {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 20px;
            margin: 30px 0;
        }

        .card {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 20px;
            border-radius: 8px;
            text-align: center;
        }

        .card.green {
            background: linear-gradient(135deg, #11998e 0%, #38ef7d 100%);
        }

        .card.blue {
            background: linear-gradient(135deg, #2193b0 0%, #6dd5ed 100%);
        }

        .card.orange {
            background: linear-gradient(135deg, #f46b45 0%, #eea849 100%);
        }

        .card h3 {
            margin: 0 0 10px 0;
            color: white;
            font-size: 14px;
            text-transform: uppercase;
            letter-spacing: 1px;
        }

        .card .number {
            font-size: 48px;
            font-weight: bold;
        }

        .flow-diagram {
            background: #f8f9fa;
            border: 2px solid #dee2e6;
            border-radius: 8px;
            padding: 30px;
            margin: 30px 0;
            min-height: 400px;
            overflow-x: auto;
        }

        .flow-container {
            display: flex;
            flex-direction: column;
            align-items: center;
            gap: 30px;
        }

        .flow-row {
            display: flex;
            align-items: center;
            gap: 20px;
            flex-wrap: wrap;
            justify-content: center;
        }

        .flow-item {
            background: white;
            border: 2px solid #dee2e6;
            border-radius: 8px;
            padding: 15px 20px;
            min-width: 150px;
            text-align: center;
            box-shadow: 0 2px 5px rgba(0,0,0,0.1);
            position: relative;
        }

        .flow-item.internet {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            font-weight: bold;
        }

        .flow-item.igw {
            background: linear-gradient(135deg, #2193b0 0%, #6dd5ed 100%);
            color: white;
            font-weight: bold;
        }

        .flow-item.nat {
            background: linear-gradient(135deg, #11998e 0%, #38ef7d 100%);
            color: white;
            font-weight: bold;
        }

        .flow-item.vpc {
            background: linear-gradient(135deg, #f46b45 0%, #eea849 100%);
            color: white;
            font-weight: bold;
            font-size: 18px;
        }

        .flow-arrow {
            font-size: 24px;
            color: #6c757d;
        }

        .vpc-section {
            margin: 40px 0;
            padding: 20px;
            border: 2px solid #e0e0e0;
            border-radius: 8px;
            background: #fafafa;
        }

        .vpc-header {
            background: #232f3e;
            color: white;
            padding: 15px;
            border-radius: 6px;
            margin-bottom: 20px;
        }

        .vpc-header h3 {
            margin: 0;
            color: white;
        }

        .subnet-group {
            margin: 30px 0;
        }

        .subnet-group-header {
            background: #495057;
            color: white;
            padding: 12px 20px;
            border-radius: 6px;
            margin-bottom: 20px;
            font-size: 18px;
            font-weight: bold;
        }

        .subnet-group-header.public {
            background: linear-gradient(135deg, #2193b0 0%, #6dd5ed 100%);
        }

        .subnet-group-header.private {
            background: linear-gradient(135deg, #764ba2 0%, #667eea 100%);
        }

        .subnet-grid {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(350px, 1fr));
            gap: 20px;
        }

        .subnet-card {
            border: 2px solid #ddd;
            border-radius: 8px;
            padding: 20px;
            background: white;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
            transition: transform 0.2s, box-shadow 0.2s;
        }

        .subnet-card:hover {
            transform: translateY(-5px);
            box-shadow: 0 4px 12px rgba(0,0,0,0.15);
        }

        .subnet-card.public {
            border-left: 6px solid #2193b0;
        }

        .subnet-card.private {
            border-left: 6px solid #764ba2;
        }

        .subnet-card h4 {
            margin-bottom: 15px;
            color: #232f3e;
            font-size: 16px;
        }

        .subnet-info {
            margin: 10px 0;
        }

        .subnet-info-row {
            display: flex;
            justify-content: space-between;
            margin: 8px 0;
            padding: 8px;
            background: #f8f9fa;
            border-radius: 4px;
            font-size: 13px;
        }

        .subnet-info-label {
            font-weight: 600;
            color: #495057;
        }

        .subnet-info-value {
            font-family: 'Courier New', monospace;
            color: #212529;
        }

        .subnet-acl {
            margin-top: 15px;
            padding-top: 15px;
            border-top: 1px solid #dee2e6;
        }

        .subnet-acl-header {
            font-weight: 600;
            color: #495057;
            margin-bottom: 10px;
            font-size: 14px;
        }

        .acl-summary {
            background: #e9ecef;
            padding: 10px;
            border-radius: 4px;
            font-size: 12px;
        }

        .acl-rule {
            padding: 6px;
            margin: 4px 0;
            background: white;
            border-left: 3px solid #6c757d;
            border-radius: 3px;
            font-size: 11px;
            font-family: 'Courier New', monospace;
        }

        .acl-rule.allow {
            border-left-color: #28a745;
        }

        .acl-rule.deny {
            border-left-color: #dc3545;
        }

        .acl-rule-explanation {
            margin-top: 4px;
            font-size: 10px;
            color: #495057;
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            line-height: 1.4;
        }

        .security-risk {
            background: #fff3cd;
            border: 2px solid #ffc107;
            padding: 12px;
            border-radius: 6px;
            margin: 15px 0;
        }

        .security-risk.high {
            background: #f8d7da;
            border-color: #dc3545;
        }

        .security-risk.critical {
            background: #721c24;
            border-color: #491217;
            color: white;
        }

        .security-risk-header {
            font-weight: 700;
            margin-bottom: 8px;
            display: flex;
            align-items: center;
            gap: 8px;
        }

        .security-risk-list {
            font-size: 13px;
            margin: 8px 0;
            padding-left: 20px;
        }

        .security-risk-list li {
            margin: 6px 0;
        }

        .security-badge {
            display: inline-block;
            padding: 4px 10px;
            border-radius: 4px;
            font-size: 11px;
            font-weight: 700;
            text-transform: uppercase;
            margin-left: 10px;
        }

        .security-badge.critical {
            background: #dc3545;
            color: white;
        }

        .security-badge.high {
            background: #fd7e14;
            color: white;
        }

        .security-badge.medium {
            background: #ffc107;
            color: #000;
        }

        .security-badge.low {
            background: #28a745;
            color: white;
        }

        .security-badge.secure {
            background: #28a745;
            color: white;
        }

        .acl-rule.security-risk {
            background: #fff3cd;
            border-left: 4px solid #ffc107;
            border: 2px solid #ffc107;
        }

        .acl-rule.security-risk.high {
            background: #f8d7da;
            border-left: 4px solid #dc3545;
            border-color: #dc3545;
        }

        .acl-rule.security-risk.critical {
            background: #f8d7da;
            border-left: 4px solid #721c24;
            border-color: #721c24;
        }

        .subnet-card-header {
            display: flex;
            justify-content: space-between;
            align-items: flex-start;
            margin-bottom: 15px;
        }

        .subnet-card h4 {
            margin: 0;
        }

        .info-box ul {
            margin: 8px 0;
            padding-left: 20px;
        }

        .info-box li {
            margin: 4px 0;
        }

        .badge {
            display: inline-block;
            padding: 4px 12px;
            border-radius: 12px;
            font-size: 11px;
            font-weight: 600;
            text-transform: uppercase;
        }

        .badge.public {
            background: #e3f2fd;
            color: #1565c0;
        }

        .badge.private {
            background: #f3e5f5;
            color: #6a1b9a;
        }

        .badge.active {
            background: #e8f5e9;
            color: #2e7d32;
        }

        .route-table {
            background: white;
            border: 1px solid #ddd;
            border-radius: 6px;
            padding: 15px;
            margin: 15px 0;
        }

        .route-entry {
            padding: 8px;
            margin: 5px 0;
            background: #f8f9fa;
            border-radius: 4px;
            font-family: 'Courier New', monospace;
            font-size: 13px;
        }

        .route-entry.igw {
            border-left: 3px solid #2193b0;
        }

        .route-entry.nat {
            border-left: 3px solid #11998e;
        }

        .route-entry.local {
            border-left: 3px solid #999;
        }

        .info-box {
            background: #e3f2fd;
            border-left: 4px solid #1976d2;
            padding: 15px;
            margin: 20px 0;
            border-radius: 4px;
        }

        .code {
            font-family: 'Courier New', monospace;
            background: #f5f5f5;
            padding: 2px 6px;
            border-radius: 3px;
            font-size: 13px;
        }

        .meta-info {
            color: #666;
            font-size: 14px;
            margin-bottom: 20px;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            margin: 20px 0;
        }

        th {
            background: #232f3e;
            color: white;
            padding: 12px;
            text-align: left;
            font-weight: 600;
        }

        td {
            padding: 12px;
            border-bottom: 1px solid #ddd;
        }

        tr:hover {
            background: #f8f9fa;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>🌐 {{.Title}}</h1>
        <div class="meta-info">
            <strong>Region:</strong> {{.Region}} |
            <strong>Discovered:</strong> {{.Timestamp}} |
            <strong>Generated:</strong> {{.GeneratedAt}}
        </div>

        <div class="info-box" style="margin: 20px 0;">
            <h3 style="margin-top: 0;">📖 Quick Reference Guide</h3>
            <div style="display: grid; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); gap: 15px; margin-top: 15px;">
                <div>
                    <strong>Security Risk Levels:</strong>
                    <ul style="margin: 8px 0; padding-left: 20px; font-size: 13px;">
                        <li>🚨 <strong>CRITICAL:</strong> Immediate action required (SSH/RDP/DB exposed)</li>
                        <li>⚠️ <strong>HIGH:</strong> Serious security concern (SMB, FTP exposed)</li>
                        <li>⚡ <strong>MEDIUM:</strong> Should be reviewed (overly permissive)</li>
                        <li>ℹ️ <strong>LOW:</strong> Minor concern (HTTP vs HTTPS)</li>
                        <li>✅ <strong>SECURE:</strong> No issues detected</li>
                    </ul>
                </div>
                <div>
                    <strong>Common IP Ranges:</strong>
                    <ul style="margin: 8px 0; padding-left: 20px; font-size: 13px;">
                        <li><code>0.0.0.0/0</code> = The entire Internet</li>
                        <li><code>10.x.x.x</code> = Internal VPC network</li>
                        <li><code>172.16-31.x.x</code> = Private network (RFC 1918)</li>
                        <li><code>x.x.x.x/32</code> = Single specific IP address</li>
                    </ul>
                </div>
                <div>
                    <strong>Common Ports:</strong>
                    <ul style="margin: 8px 0; padding-left: 20px; font-size: 13px;">
                        <li><code>22</code> = SSH (Server access)</li>
                        <li><code>80</code> = HTTP (Web traffic)</li>
                        <li><code>443</code> = HTTPS (Secure web)</li>
                        <li><code>3306</code> = MySQL Database</li>
                        <li><code>5432</code> = PostgreSQL Database</li>
                        <li><code>1521</code> = Oracle Database</li>
                        <li><code>3389</code> = RDP (Remote Desktop)</li>
                        <li><code>32768-65535</code> = Ephemeral (return traffic)</li>
                    </ul>
                </div>
                <div>
                    <strong>Security Best Practices:</strong>
                    <ul style="margin: 8px 0; padding-left: 20px; font-size: 13px;">
                        <li>🚨 Never expose SSH/RDP to <code>0.0.0.0/0</code></li>
                        <li>🔒 Database ports should only allow internal traffic</li>
                        <li>✅ Use security groups for instance-level control</li>
                        <li>✅ Public subnets should restrict inbound access</li>
                        <li>✅ Use HTTPS (443) instead of HTTP (80) when possible</li>
                    </ul>
                </div>
            </div>
        </div>

        <h2>📊 Summary</h2>
        <div class="summary-cards">
            <div class="card">
                <h3>VPCs</h3>
                <div class="number">{{index .Summary "total_vpcs"}}</div>
            </div>
            <div class="card green">
                <h3>Public Subnets</h3>
                <div class="number">{{index .Summary "public_subnets"}}</div>
            </div>
            <div class="card blue">
                <h3>Private Subnets</h3>
                <div class="number">{{index .Summary "private_subnets"}}</div>
            </div>
            <div class="card orange">
                <h3>NAT Gateways</h3>
                <div class="number">{{index .Summary "nat_gateways"}}</div>
            </div>
        </div>
{{range .VPCs}}
        <div class="vpc-section">
            <div class="vpc-header">
                <h3>{{.VPC.Name}}</h3>
                <div><strong>VPC ID:</strong> {{.VPC.VpcID}}</div>
                <div><strong>CIDR:</strong> {{.VPC.CidrBlock}}</div>
            </div>
{{if eq .Summary.TotalIssues 0}}
            <div class="info-box" style="background: #d4edda; border-left-color: #28a745;">
                <strong>✅ No Security Issues Detected</strong>
                <p style="margin: 8px 0 0 0;">All Network ACL rules appear to follow security best practices.</p>
            </div>
{{else}}
            <div class="security-risk {{.Summary.Overall}}" style="margin: 20px 0;">
                <div class="security-risk-header" style="font-size: 16px;">
                    {{levelIcon .Summary.Overall}} {{overallHeading .Summary.Overall}} - {{.Summary.TotalIssues}} Issue(s) Found
                </div>
                <p style="margin: 8px 0;">Review and remediate the following security issues:</p>
{{$summary := .Summary}}
{{range $level := severityLevels}}{{with index $summary.Risks $level}}
                <div style="margin-top: 15px;">
                    <strong style="text-transform: uppercase;">{{levelIcon $level}} {{$level}} ({{len .}})</strong>
                    <ul class="security-risk-list">
{{range .}}
                        <li><strong>{{.SubnetName}}</strong> - Rule #{{.RuleNumber}}: {{.Reason}}</li>
{{end}}
                    </ul>
                </div>
{{end}}{{end}}
            </div>
{{end}}
            <h3>📊 Network Flow</h3>
            <div class="flow-diagram">
                <div class="flow-container">
{{if or .VPC.InternetGateway .VPC.VpnGateway}}
                    <div class="flow-row">
                        <div class="flow-item internet">🌐 Internet</div>
{{if .VPC.VpnGateway}}
                        <div class="flow-item internet">🔒 On-Premises</div>
{{end}}
                    </div>
                    <div class="flow-arrow">↓</div>
{{end}}
                    <div class="flow-row">
{{with .VPC.InternetGateway}}
                        <div class="flow-item igw">
                            Internet Gateway<br>
                            <small>{{.IgwID}}</small>
                        </div>
{{end}}
{{with .VPC.VpnGateway}}
                        <div class="flow-item igw">
                            VPN Gateway<br>
                            <small>{{.VgwID}}</small>
                        </div>
{{end}}
                    </div>
                    <div class="flow-arrow">↓</div>
                    <div class="flow-row">
                        <div class="flow-item vpc">
                            VPC: {{.VPC.Name}}<br>
                            <small>{{.VPC.CidrBlock}}</small>
                        </div>
                    </div>
                    <div class="flow-arrow">↓</div>
                    <div class="flow-row">
{{with len .PublicSubnets}}{{if gt . 0}}
                        <div class="flow-item" style="background: #e3f2fd; border-color: #2193b0; font-weight: bold;">
                            {{.}} Public Subnet{{plural "" "s" .}}<br>
                            <small>Direct Internet Access</small>
                        </div>
{{end}}{{end}}
{{with len .VPC.NatGateways}}{{if gt . 0}}
                        <div class="flow-item nat">
                            {{.}} NAT Gateway{{plural "" "s" .}}<br>
                            <small>Outbound Only</small>
                        </div>
{{end}}{{end}}
                    </div>
{{with len .PrivateSubnets}}{{if gt . 0}}
                    <div class="flow-arrow">↓</div>
                    <div class="flow-row">
                        <div class="flow-item" style="background: #f3e5f5; border-color: #764ba2; font-weight: bold;">
                            {{.}} Private Subnet{{plural "" "s" .}}<br>
                            <small>No Direct Internet Access</small>
                        </div>
                    </div>
{{end}}{{end}}
                </div>
            </div>
{{if .PublicSubnets}}
            <div class="subnet-group">
                <div class="subnet-group-header public">
                    🌐 Public Subnets
                </div>
                <div class="subnet-grid">
{{range .PublicSubnets}}{{template "subnetCard" dict "View" . "Class" "public"}}{{end}}
                </div>
            </div>
{{end}}
{{if .PrivateSubnets}}
            <div class="subnet-group">
                <div class="subnet-group-header private">
                    🔒 Private Subnets
                </div>
                <div class="subnet-grid">
{{range .PrivateSubnets}}{{template "subnetCard" dict "View" . "Class" "private"}}{{end}}
                </div>
            </div>
{{end}}
            <h3>🗺️ Route Tables</h3>
{{$vpc := .VPC}}
{{range .VPC.RouteTables}}
            <div class="route-table">
                <h4>{{.Name}}{{if .IsMain}} (Main){{end}}</h4>
                <div class="code">{{.RouteTableID}}</div>
                <div><strong>Associated Subnets:</strong> {{len .AssociatedSubnets}}</div>
{{if .AssociatedSubnets}}
                <ul>
{{range .AssociatedSubnets}}
                    <li>{{subnetName $vpc .}} ({{.}})</li>
{{end}}
                </ul>
{{end}}
                <div style="margin-top: 15px;"><strong>Routes:</strong></div>
{{range .Routes}}
                <div class="route-entry {{.TargetType}}">
                    <strong>{{.Destination}}</strong> → {{.Target}} ({{.TargetType}})
                </div>
{{end}}
            </div>
{{end}}
        </div>
{{end}}
        <h2>🔗 Network Connectivity</h2>
{{with .Connectivity.VPCPeering}}
        <h3>VPC Peering Connections</h3>
        <table>
            <tr><th>Peering ID</th><th>Name</th><th>Requester</th><th>Accepter</th><th>Status</th></tr>
{{range .}}
            <tr>
                <td class="code">{{.PeeringID}}</td>
                <td>{{.Name}}</td>
                <td>{{.Requester.VpcID}}<br>({{.Requester.CIDR}})</td>
                <td>{{.Accepter.VpcID}}<br>({{.Accepter.CIDR}})</td>
                <td><span class="badge {{activeClass .Status}}">{{.Status}}</span></td>
            </tr>
{{end}}
        </table>
{{end}}
{{with .Connectivity.VPNConnections}}
        <h3>VPN Connections</h3>
        <table>
            <tr><th>VPN ID</th><th>Name</th><th>State</th><th>Type</th><th>Customer Gateway IP</th></tr>
{{range .}}
            <tr>
                <td class="code">{{.VpnID}}</td>
                <td>{{.Name}}</td>
                <td><span class="badge {{activeClass .State}}">{{.State}}</span></td>
                <td>{{.Type}}</td>
                <td>{{.CustomerGatewayIP}}</td>
            </tr>
{{end}}
        </table>
{{end}}
{{with .Connectivity.TransitGateways}}
        <h3>Transit Gateways</h3>
{{range .}}
        <div class="route-table">
            <h4>{{.Name}}</h4>
            <div class="code">{{.TgwID}}</div>
            <div><strong>State:</strong> <span class="badge {{activeClass .State}}">{{.State}}</span></div>
            <div><strong>Attachments:</strong> {{len .Attachments}}</div>
{{if .Attachments}}
            <table style="margin-top: 15px;">
                <tr><th>Resource Type</th><th>Resource ID</th><th>State</th></tr>
{{range .Attachments}}
                <tr>
                    <td>{{.ResourceType}}</td>
                    <td class="code">{{.ResourceID}}</td>
                    <td><span class="badge {{activeClass .State}}">{{.State}}</span></td>
                </tr>
{{end}}
            </table>
{{end}}
        </div>
{{end}}
{{end}}
{{with .Connectivity.VPCEndpoints}}
        <h3>VPC Endpoints</h3>
        <table>
            <tr><th>Endpoint ID</th><th>Service</th><th>VPC</th><th>Type</th><th>State</th></tr>
{{range .}}
            <tr>
                <td class="code">{{.EndpointID}}</td>
                <td>{{.ServiceName}}</td>
                <td class="code">{{.VpcID}}</td>
                <td>{{.EndpointType}}</td>
                <td><span class="badge {{activeClass .State}}">{{.State}}</span></td>
            </tr>
{{end}}
        </table>
{{end}}
    </div>
</body>
</html>

{{define "subnetCard"}}
{{$view := .View}}
            <div class="subnet-card {{.Class}}">
                <div class="subnet-card-header">
                    <h4>{{$view.Subnet.Name}}</h4>
{{if $view.HasNacl}}
                    <span class="security-badge {{$view.Score.Overall}}" title="{{$view.Score.TotalIssues}} security issue(s) found">
                        {{levelIcon $view.Score.Overall}} {{upper $view.Score.Overall}}
                    </span>
{{end}}
                </div>
                <div class="subnet-info">
                    <div class="subnet-info-row">
                        <span class="subnet-info-label">Subnet ID:</span>
                        <span class="subnet-info-value">{{$view.Subnet.SubnetID}}</span>
                    </div>
                    <div class="subnet-info-row">
                        <span class="subnet-info-label">CIDR Block:</span>
                        <span class="subnet-info-value">{{$view.Subnet.CidrBlock}}</span>
                    </div>
                    <div class="subnet-info-row">
                        <span class="subnet-info-label">Availability Zone:</span>
                        <span class="subnet-info-value">{{$view.Subnet.AvailabilityZone}}</span>
                    </div>
                    <div class="subnet-info-row">
                        <span class="subnet-info-label">Available IPs:</span>
                        <span class="subnet-info-value">{{$view.Subnet.AvailableIPCount}}</span>
                    </div>
                </div>
{{if and $view.HasNacl (gt $view.Score.TotalIssues 0)}}
                <div class="security-risk {{$view.Score.Overall}}">
                    <div class="security-risk-header">
                        🛡️ Security Issues Detected ({{$view.Score.TotalIssues}})
                    </div>
                    <ul class="security-risk-list">
{{range $level := severityLevels}}{{range index $view.Score.Risks $level}}
                        <li><strong>Rule #{{.RuleNumber}}:</strong> {{.Reason}}</li>
{{end}}{{end}}
                    </ul>
                </div>
{{end}}
{{if $view.HasNacl}}
                <div class="subnet-acl">
                    <div class="subnet-acl-header">🛡️ Network ACL: {{$view.Nacl.NaclName}}{{if $view.Nacl.IsDefault}} (Default){{end}}</div>
                    <div class="acl-summary">
                        <div style="font-weight: 600; margin-bottom: 5px;">Inbound Rules:</div>
{{range $view.Nacl.InboundRules}}
                        <div class="acl-rule {{.Rule.Action}} {{riskClass .Level}}" title="{{.Explanation}}">
                            #{{.Rule.RuleNumber}}: {{upper .Rule.Action}} {{.Rule.Protocol}} from {{.Rule.CIDR}} port {{.Rule.PortRange}}
                            <div class="acl-rule-explanation">
                                {{.Explanation}}
                            </div>
                        </div>
{{end}}
{{if gt $view.Nacl.TotalInbound (len $view.Nacl.InboundRules)}}
                        <div style="font-size: 11px; color: #6c757d;">… and {{sub $view.Nacl.TotalInbound (len $view.Nacl.InboundRules)}} more inbound rule(s)</div>
{{end}}
                        <div style="font-weight: 600; margin-top: 10px; margin-bottom: 5px;">Outbound Rules:</div>
{{range $view.Nacl.OutboundRules}}
                        <div class="acl-rule {{.Rule.Action}}" title="{{.Explanation}}">
                            #{{.Rule.RuleNumber}}: {{upper .Rule.Action}} {{.Rule.Protocol}} to {{.Rule.CIDR}} port {{.Rule.PortRange}}
                            <div class="acl-rule-explanation">
                                {{.Explanation}}
                            </div>
                        </div>
{{end}}
{{if gt $view.Nacl.TotalOutbound (len $view.Nacl.OutboundRules)}}
                        <div style="font-size: 11px; color: #6c757d;">… and {{sub $view.Nacl.TotalOutbound (len $view.Nacl.OutboundRules)}} more outbound rule(s)</div>
{{end}}
                    </div>
                </div>
{{end}}
            </div>
{{end}}`
