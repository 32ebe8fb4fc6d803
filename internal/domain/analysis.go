package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/lswbridge/internal/model"
)

// AnalysisLine builds the directive asking the learner to check A and B
// against the specification:
//
//	EMPTY CHECKING: {A1, A2} || {B1} || S1
func AnalysisLine(componentA, componentB, specification []m.AutomatonName, dialect m.Dialect) string {
	return fmt.Sprintf("%s: {%s} || {%s} || %s",
		dialect.AnalysisDirective,
		joinNames(componentA),
		joinNames(componentB),
		joinNames(specification),
	)
}

func joinNames(names []m.AutomatonName) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, string(name))
	}

	return strings.Join(parts, ", ")
}
