package domain

import (
	"regexp"

	m "github.com/mouse-blink/lswbridge/internal/model"
)

// InitialLocations collects every "& loc[automaton] = location" binding of the
// init definition. A later binding for the same automaton overwrites an
// earlier one. Bindings for automata that appear in no fragment are kept.
func InitialLocations(initDefinition string, dialect m.Dialect) m.InitialLocationTable {
	pattern := regexp.MustCompile(`&\s+` + regexp.QuoteMeta(dialect.LocationKeyword) + `\[(\w+)\]\s*=\s*(\w+)`)

	table := make(m.InitialLocationTable)

	for _, match := range pattern.FindAllStringSubmatch(initDefinition, -1) {
		table[m.AutomatonName(match[1])] = m.LocationName(match[2])
	}

	return table
}
