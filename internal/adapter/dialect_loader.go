package adapter

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	m "github.com/mouse-blink/lswbridge/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// DialectLoader reads the markers and keywords of a model dialect.
type DialectLoader interface {
	// Load returns the dialect described by the file at path merged over the
	// default dialect. An empty path yields the default dialect.
	Load(path m.Path) (m.Dialect, error)
}

// HCLDialectLoader loads dialect files written in HCL:
//
//	location_keyword = "loc"
//	init_keyword     = "INITIAL"
//	component_a_end  = default.component_b_start
//
// Every attribute is optional. The built-in values are available as the
// `default` object.
type HCLDialectLoader struct{}

// NewHCLDialectLoader creates a new HCL dialect loader.
func NewHCLDialectLoader() *HCLDialectLoader {
	return &HCLDialectLoader{}
}

// Load parses and decodes the dialect file at path.
func (l *HCLDialectLoader) Load(path m.Path) (m.Dialect, error) {
	if path == "" {
		return m.DefaultDialect(), nil
	}

	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(string(path))
	if diags.HasErrors() {
		return m.Dialect{}, fmt.Errorf("failed to parse dialect file %s: %w", path, diags)
	}

	return decodeDialect(file)
}

// ParseDialect decodes dialect source held in memory; filename is only used
// in diagnostics.
func ParseDialect(src []byte, filename string) (m.Dialect, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return m.Dialect{}, fmt.Errorf("failed to parse dialect file %s: %w", filename, diags)
	}

	return decodeDialect(file)
}

func decodeDialect(file *hcl.File) (m.Dialect, error) {
	defaults := m.DefaultDialect()

	var dialect m.Dialect
	if diags := gohcl.DecodeBody(file.Body, dialectEvalContext(defaults), &dialect); diags.HasErrors() {
		return m.Dialect{}, fmt.Errorf("failed to decode dialect: %w", diags)
	}

	return dialect.Merge(defaults), nil
}

func dialectEvalContext(defaults m.Dialect) *hcl.EvalContext {
	attributes := make(map[string]cty.Value)
	for _, attr := range defaults.Attributes() {
		attributes[attr[0]] = cty.StringVal(attr[1])
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default": cty.ObjectVal(attributes),
		},
	}
}

// WriteDialect renders dialect as an HCL dialect file.
func WriteDialect(w io.Writer, dialect m.Dialect) error {
	file := hclwrite.NewEmptyFile()
	body := file.Body()

	for _, attr := range dialect.Attributes() {
		body.SetAttributeValue(attr[0], cty.StringVal(attr[1]))
	}

	_, err := w.Write(file.Bytes())

	return err
}
