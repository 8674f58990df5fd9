package discovery

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
)

// Load reads and decodes the discovery document at path. A missing file
// or malformed JSON is fatal for the run; missing optional fields are
// resolved to defaults here so the analysis engine never has to.
func (s *service) Load(path string) (model.Discovery, error) {
	var doc model.Discovery

	raw, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("failed to read discovery file %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("invalid JSON in discovery file %s: %w", path, err)
	}

	applyDefaults(&doc)
	return doc, nil
}

func applyDefaults(doc *model.Discovery) {
	if doc.Region == "" {
		doc.Region = "unknown"
	}
	if doc.Summary == nil {
		doc.Summary = map[string]int{}
	}

	for i := range doc.VPCs {
		vpc := &doc.VPCs[i]
		if vpc.Name == "" {
			vpc.Name = "N/A"
		}
		for j := range vpc.Subnets {
			if vpc.Subnets[j].Name == "" {
				vpc.Subnets[j].Name = "N/A"
			}
		}
		for j := range vpc.RouteTables {
			if vpc.RouteTables[j].Name == "" {
				vpc.RouteTables[j].Name = "N/A"
			}
		}
		for j := range vpc.Nacls {
			nacl := &vpc.Nacls[j]
			if nacl.Name == "" {
				nacl.Name = "N/A"
			}
			defaultPortRanges(nacl.InboundRules)
			defaultPortRanges(nacl.OutboundRules)
		}
	}
}

// An absent port_range means the rule covers all ports.
func defaultPortRanges(rules []model.NaclRule) {
	for i := range rules {
		if rules[i].PortRange == "" {
			rules[i].PortRange = "All"
		}
	}
}
