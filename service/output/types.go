package output

import (
	"github.com/shankarnarayanb/aws-network-visualizer/model"
	"github.com/shankarnarayanb/aws-network-visualizer/shared/htmlreport"
	"github.com/shankarnarayanb/aws-network-visualizer/shared/jsonreport"
	"github.com/shankarnarayanb/aws-network-visualizer/shared/markdownreport"
	"github.com/shankarnarayanb/aws-network-visualizer/shared/textreport"
)

// Format represents the report output format type
type Format string

const (
	FormatHTML     Format = "html"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatAll      Format = "all"
)

// Renderer defines the interface for generating report documents
type Renderer interface {
	GenerateHTML(input model.RenderReportInput) (string, error)
	GenerateText(input model.RenderReportInput) (string, error)
	GenerateMarkdown(input model.RenderReportInput) (string, error)
	GenerateJSON(input model.RenderReportInput) (string, error)
}

type realRenderer struct{}

func (r *realRenderer) GenerateHTML(input model.RenderReportInput) (string, error) {
	return htmlreport.Generate(input)
}

func (r *realRenderer) GenerateText(input model.RenderReportInput) (string, error) {
	return textreport.Generate(input)
}

func (r *realRenderer) GenerateMarkdown(input model.RenderReportInput) (string, error) {
	return markdownreport.Generate(input)
}

func (r *realRenderer) GenerateJSON(input model.RenderReportInput) (string, error) {
	return jsonreport.Generate(input)
}

// service is the internal implementation
type service struct {
	formats   []Format
	outputDir string
	renderer  Renderer
}

// Service defines the interface for output operations
type Service interface {
	Render(input model.RenderReportInput) error
}
