// Package flag parses the command line surface of the visualizer.
package flag

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags. The single
// positional argument is the path to the discovery JSON file.
func (s *service) GetParsedFlags() (model.Flags, error) {
	format := pflag.StringP("format", "f", "", "Output format (html, text, markdown, json, or all; default html)")
	outputDir := pflag.StringP("output-dir", "d", "", "Directory for generated reports (default network_reports)")
	configPath := pflag.String("config-path", "", "Path to report config file")
	ruleLimit := pflag.Int("rule-display-limit", 0, "Max NACL rules shown per direction (default 5; scoring always covers all rules)")
	version := pflag.BoolP("version", "v", false, "Show version information")
	noBanner := pflag.Bool("no-banner", false, "Suppress the startup banner")

	pflag.Parse()

	flags := model.Flags{
		Format:           *format,
		OutputDir:        *outputDir,
		ConfigPath:       *configPath,
		RuleDisplayLimit: *ruleLimit,
		Version:          *version,
		NoBanner:         *noBanner,
	}

	switch flags.Format {
	case "", "html", "text", "markdown", "json", "all":
	default:
		return flags, fmt.Errorf("unsupported format %q (expected html, text, markdown, json, or all)", flags.Format)
	}

	if flags.Version {
		return flags, nil
	}

	if pflag.NArg() < 1 {
		return flags, fmt.Errorf("missing required argument: path to discovery JSON file")
	}
	flags.DiscoveryFile = pflag.Arg(0)

	return flags, nil
}
