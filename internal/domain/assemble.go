package domain

import (
	"strings"

	m "github.com/mouse-blink/lswbridge/internal/model"
)

// Assemble concatenates the rewritten fragments and the analysis line in that
// order, adding no separators.
func Assemble(componentA, componentB, specification, analysisLine string) string {
	var sb strings.Builder

	sb.Grow(len(componentA) + len(componentB) + len(specification) + len(analysisLine))
	sb.WriteString(componentA)
	sb.WriteString(componentB)
	sb.WriteString(specification)
	sb.WriteString(analysisLine)

	return sb.String()
}

// OutputName derives the output file name: "model.imi" becomes "model.lsw",
// any other name gets the output extension appended.
func OutputName(input m.Path, dialect m.Dialect) m.Path {
	name := string(input)

	if len(name) > len(dialect.ModelExtension) && strings.HasSuffix(name, dialect.ModelExtension) {
		return m.Path(strings.TrimSuffix(name, dialect.ModelExtension) + dialect.OutputExtension)
	}

	return m.Path(name + dialect.OutputExtension)
}
