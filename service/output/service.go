// Package output writes rendered reports to the configured directory.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shankarnarayanb/aws-network-visualizer/model"
)

// NewService creates a new output service for the requested formats. The
// "all" format expands to every concrete format.
func NewService(formats []string, outputDir string) Service {
	var resolved []Format
	for _, format := range formats {
		if Format(format) == FormatAll {
			resolved = append(resolved, FormatHTML, FormatText, FormatMarkdown, FormatJSON)
			continue
		}
		resolved = append(resolved, Format(format))
	}

	return &service{
		formats:   resolved,
		outputDir: outputDir,
		renderer:  &realRenderer{},
	}
}

// NewServiceWithRenderer creates an output service with a custom renderer,
// used for testing.
func NewServiceWithRenderer(formats []string, outputDir string, renderer Renderer) Service {
	svc := NewService(formats, outputDir).(*service)
	svc.renderer = renderer
	return svc
}

var formatExtensions = map[Format]string{
	FormatHTML:     "html",
	FormatText:     "txt",
	FormatMarkdown: "md",
	FormatJSON:     "json",
}

func (s *service) Render(input model.RenderReportInput) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.outputDir, err)
	}

	stamp := time.Now().Format("20060102_150405")

	for _, format := range s.formats {
		content, err := s.generate(format, input)
		if err != nil {
			return fmt.Errorf("failed to generate %s report: %w", format, err)
		}

		name := fmt.Sprintf("network_report_%s_%s.%s", input.Region, stamp, formatExtensions[format])
		path := filepath.Join(s.outputDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s report: %w", format, err)
		}

		fmt.Printf("✅ %s report created: %s\n", format, path)
	}

	return nil
}

func (s *service) generate(format Format, input model.RenderReportInput) (string, error) {
	switch format {
	case FormatHTML:
		return s.renderer.GenerateHTML(input)
	case FormatText:
		return s.renderer.GenerateText(input)
	case FormatMarkdown:
		return s.renderer.GenerateMarkdown(input)
	case FormatJSON:
		return s.renderer.GenerateJSON(input)
	}
	return "", fmt.Errorf("unsupported format %q", format)
}
