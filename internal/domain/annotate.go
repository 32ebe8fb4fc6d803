package domain

import (
	"fmt"

	m "github.com/mouse-blink/lswbridge/internal/model"
)

// Annotate tags the initial location of every automaton of fragment with the
// init keyword, e.g. "loc l0" becomes "loc l0[INIT]".
//
// Automata are processed in order and each rewrite applies to the whole
// fragment as left by the previous one, so initial location names must be
// unique across the fragment. A rewrite that changes nothing is an error.
func Annotate(rewriter Rewriter, fragment m.Fragment, table m.InitialLocationTable, dialect m.Dialect) (string, error) {
	suffix := "[" + dialect.InitKeyword + "]"

	return fold(fragment.Automata, fragment.Text, func(acc string, automaton m.AutomatonName) (string, error) {
		location, ok := table.Lookup(automaton)
		if !ok {
			return acc, fmt.Errorf("%w for automaton %q in %s", ErrUnknownAutomaton, automaton, fragment.Kind)
		}

		annotated := rewriter.MarkLocation(acc, dialect.LocationKeyword, location, suffix)
		if annotated == acc {
			return acc, fmt.Errorf("%w: could not find pattern \"%s %s\" in automaton %q",
				ErrLocationNotFound, dialect.LocationKeyword, location, automaton)
		}

		return annotated, nil
	})
}
