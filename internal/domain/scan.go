package domain

import (
	"regexp"

	m "github.com/mouse-blink/lswbridge/internal/model"
)

// AutomataNames returns the identifier following every occurrence of the
// automaton keyword, in order of appearance. Duplicates are kept.
//
// The keyword must not appear anywhere else in the text, not even as a
// substring of another word.
func AutomataNames(text string, dialect m.Dialect) []m.AutomatonName {
	pattern := regexp.MustCompile(regexp.QuoteMeta(dialect.AutomatonKeyword) + `\s+(\w+)`)

	matches := pattern.FindAllStringSubmatch(text, -1)

	names := make([]m.AutomatonName, 0, len(matches))
	for _, match := range matches {
		names = append(names, m.AutomatonName(match[1]))
	}

	return names
}
