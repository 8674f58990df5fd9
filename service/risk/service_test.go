package risk

import (
	"testing"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
)

func allowFromInternet(portRange string) model.NaclRule {
	return model.NaclRule{
		RuleNumber: 100,
		Action:     "allow",
		Protocol:   "tcp",
		CIDR:       "0.0.0.0/0",
		PortRange:  portRange,
	}
}

func TestClassifyInternetPorts(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name      string
		portRange string
		want      string
	}{
		{"ssh", "22", LevelCritical},
		{"rdp", "3389", LevelCritical},
		{"mysql", "3306", LevelCritical},
		{"postgres", "5432", LevelCritical},
		{"oracle", "1521", LevelCritical},
		{"mongodb", "27017", LevelCritical},
		{"redis", "6379", LevelCritical},
		{"couchdb", "5984", LevelCritical},
		{"elasticsearch transport", "9300", LevelCritical},
		{"telnet", "23", LevelCritical},
		{"all ports numeric", "0-65535", LevelCritical},
		{"all ports marker", "All", LevelCritical},
		{"smb", "445", LevelHigh},
		{"netbios", "139", LevelHigh},
		{"ftp", "21", LevelHigh},
		{"smtp", "25", LevelHigh},
		{"dns", "53", LevelHigh},
		{"windows rpc", "135", LevelHigh},
		{"http alt", "8080", LevelMedium},
		{"https alt", "8443", LevelMedium},
		{"monitoring", "9090", LevelMedium},
		{"dev server", "5000", LevelMedium},
		{"http", "80", LevelLow},
		{"https", "443", LevelNone},
		{"unlisted port", "12345", LevelNone},
	}

	for _, tt := range tests {
		got := svc.Classify(allowFromInternet(tt.portRange), DirectionInbound)
		if got.Level != tt.want {
			t.Fatalf("%s: got level %q, want %q", tt.name, got.Level, tt.want)
		}
	}
}

func TestClassifyDenyNeverFlagged(t *testing.T) {
	svc := NewService()

	for _, portRange := range []string{"22", "3389", "0-65535", "All", "443"} {
		rule := allowFromInternet(portRange)
		rule.Action = "deny"
		for _, direction := range []string{DirectionInbound, DirectionOutbound} {
			if got := svc.Classify(rule, direction); got.Level != LevelNone {
				t.Fatalf("deny %s %s: got level %q, want none", portRange, direction, got.Level)
			}
		}
	}
}

func TestClassifyOutboundInformationalOnly(t *testing.T) {
	svc := NewService()

	if got := svc.Classify(allowFromInternet("22"), DirectionOutbound); got.Level != LevelNone {
		t.Fatalf("outbound ssh: got level %q, want none", got.Level)
	}
}

func TestClassifyPrivateSourceAllPorts(t *testing.T) {
	svc := NewService()

	rule := model.NaclRule{
		RuleNumber: 100,
		Action:     "allow",
		Protocol:   "tcp",
		CIDR:       "10.0.0.0/16",
		PortRange:  "0-65535",
	}

	got := svc.Classify(rule, DirectionInbound)
	if got.Level != LevelMedium {
		t.Fatalf("private all-ports: got level %q, want medium (strictly below internet-facing critical)", got.Level)
	}

	rule.PortRange = "All"
	if got := svc.Classify(rule, DirectionInbound); got.Level != LevelMedium {
		t.Fatalf("private All marker: got level %q, want medium", got.Level)
	}

	rule.PortRange = "22"
	if got := svc.Classify(rule, DirectionInbound); got.Level != LevelNone {
		t.Fatalf("private ssh: got level %q, want none", got.Level)
	}
}

func TestClassifyHTTPSCarriesReassuringReason(t *testing.T) {
	svc := NewService()

	got := svc.Classify(allowFromInternet("443"), DirectionInbound)
	if got.Level != LevelNone || got.Reason == "" {
		t.Fatalf("https: want level none with non-empty reason, got %+v", got)
	}

	unlisted := svc.Classify(allowFromInternet("12345"), DirectionInbound)
	if unlisted.Reason != "" {
		t.Fatalf("unlisted port: want empty reason, got %q", unlisted.Reason)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	svc := NewService()
	rule := allowFromInternet("22")

	first := svc.Classify(rule, DirectionInbound)
	second := svc.Classify(rule, DirectionInbound)
	if first != second {
		t.Fatalf("classification is not idempotent: %+v vs %+v", first, second)
	}
}
