// Package model defines the data structures used throughout the application.
package model

// Reserved rule number for the implicit default-deny entry at the end of
// every NACL. It is excluded from scoring and display.
const ReservedRuleNumber = 32767

// Discovery is the top-level network discovery document produced by the
// discovery tool and consumed by this visualizer.
type Discovery struct {
	Region       string         `json:"region"`
	Timestamp    string         `json:"timestamp"`
	Summary      map[string]int `json:"summary"`
	VPCs         []VPC          `json:"vpcs"`
	Connectivity Connectivity   `json:"connectivity"`
}

// VPC describes a single VPC and its attached networking resources.
type VPC struct {
	VpcID           string           `json:"vpc_id"`
	Name            string           `json:"name"`
	CidrBlock       string           `json:"cidr_block"`
	Subnets         []Subnet         `json:"subnets"`
	RouteTables     []RouteTable     `json:"route_tables"`
	Nacls           []Nacl           `json:"nacls"`
	InternetGateway *InternetGateway `json:"internet_gateway"`
	NatGateways     []NatGateway     `json:"nat_gateways"`
	VpnGateway      *VpnGateway      `json:"vpn_gateway"`
}

// Subnet describes a subnet within a VPC.
type Subnet struct {
	SubnetID         string `json:"subnet_id"`
	Name             string `json:"name"`
	CidrBlock        string `json:"cidr_block"`
	AvailabilityZone string `json:"availability_zone"`
	AvailableIPCount int    `json:"available_ip_count"`
	SubnetType       string `json:"subnet_type"` // "Public" or "Private"
}

// RouteTable describes a route table and its subnet associations.
type RouteTable struct {
	RouteTableID      string   `json:"route_table_id"`
	Name              string   `json:"name"`
	IsMain            bool     `json:"is_main"`
	AssociatedSubnets []string `json:"associated_subnets"`
	Routes            []Route  `json:"routes"`
}

// Route is a single route entry.
type Route struct {
	Destination string `json:"destination"`
	Target      string `json:"target"`
	TargetType  string `json:"target_type"` // "igw", "nat", "local", ...
}

// Nacl describes a Network ACL and its rules.
type Nacl struct {
	NaclID            string     `json:"nacl_id"`
	Name              string     `json:"name"`
	IsDefault         bool       `json:"is_default"`
	AssociatedSubnets []string   `json:"associated_subnets"`
	InboundRules      []NaclRule `json:"inbound_rules"`
	OutboundRules     []NaclRule `json:"outbound_rules"`
}

// NaclRule is a single NACL rule. Rules are immutable input data and are
// never mutated by the analysis engine.
type NaclRule struct {
	RuleNumber int    `json:"rule_number"`
	Action     string `json:"action"`   // "allow" or "deny"
	Protocol   string `json:"protocol"` // "tcp", "udp", "icmp", "all", ...
	CIDR       string `json:"cidr"`
	PortRange  string `json:"port_range"` // "22", "0-65535", or "All"
}

// InternetGateway describes a VPC's internet gateway.
type InternetGateway struct {
	IgwID string `json:"igw_id"`
	Name  string `json:"name"`
}

// NatGateway describes a NAT gateway.
type NatGateway struct {
	NatGatewayID string `json:"nat_gateway_id"`
	Name         string `json:"name"`
	SubnetID     string `json:"subnet_id"`
	State        string `json:"state"`
}

// VpnGateway describes a VPC's VPN gateway.
type VpnGateway struct {
	VgwID string `json:"vgw_id"`
	Name  string `json:"name"`
}

// Connectivity groups the cross-VPC connectivity resources of the region.
type Connectivity struct {
	VPCPeering      []PeeringConnection `json:"vpc_peering"`
	VPNConnections  []VPNConnection     `json:"vpn_connections"`
	TransitGateways []TransitGateway    `json:"transit_gateways"`
	VPCEndpoints    []VPCEndpoint       `json:"vpc_endpoints"`
}

// PeeringConnection describes a VPC peering connection.
type PeeringConnection struct {
	PeeringID string     `json:"peering_id"`
	Name      string     `json:"name"`
	Requester PeeringEnd `json:"requester"`
	Accepter  PeeringEnd `json:"accepter"`
	Status    string     `json:"status"`
}

// PeeringEnd is one side of a peering connection.
type PeeringEnd struct {
	VpcID string `json:"vpc_id"`
	CIDR  string `json:"cidr"`
}

// VPNConnection describes a site-to-site VPN connection.
type VPNConnection struct {
	VpnID             string `json:"vpn_id"`
	Name              string `json:"name"`
	State             string `json:"state"`
	Type              string `json:"type"`
	CustomerGatewayIP string `json:"customer_gateway_ip"`
}

// TransitGateway describes a transit gateway and its attachments.
type TransitGateway struct {
	TgwID       string          `json:"tgw_id"`
	Name        string          `json:"name"`
	State       string          `json:"state"`
	Attachments []TgwAttachment `json:"attachments"`
}

// TgwAttachment is a single transit gateway attachment.
type TgwAttachment struct {
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	State        string `json:"state"`
}

// VPCEndpoint describes a VPC endpoint.
type VPCEndpoint struct {
	EndpointID   string `json:"endpoint_id"`
	ServiceName  string `json:"service_name"`
	VpcID        string `json:"vpc_id"`
	EndpointType string `json:"endpoint_type"`
	State        string `json:"state"`
}
