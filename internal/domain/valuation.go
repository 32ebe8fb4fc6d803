package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/lswbridge/internal/model"
)

// ParseValuation reads a reference valuation of the form
// "p1=v1,p2=v2,...". Separators cannot be escaped. Values are kept verbatim.
func ParseValuation(raw string, dialect m.Dialect) (m.Valuation, error) {
	assignments := strings.Split(raw, dialect.PairSeparator)

	valuation := make(m.Valuation, 0, len(assignments))

	for _, assignment := range assignments {
		parts := strings.Split(assignment, dialect.AssignmentSeparator)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("%w %q: should be of the form \"parameter%svaluation\"",
				ErrMalformedPair, assignment, dialect.AssignmentSeparator)
		}

		valuation = append(valuation, m.ValuationPair{
			Parameter: m.ParameterName(parts[0]),
			Value:     parts[1],
		})
	}

	return valuation, nil
}
