// Package model defines the data structures for model translation.
package model

// Path represents a file system path.
type Path string

// Model is the full text of an input model file.
type Model string

// AutomatonName identifies an automaton declared in a fragment.
type AutomatonName string

// LocationName identifies a location of an automaton.
type LocationName string

// FragmentKind names the region of the model a fragment was cut from.
type FragmentKind string

const (
	// FragmentComponentA is the parametric component.
	FragmentComponentA FragmentKind = "component A"

	// FragmentComponentB is the non-parametric component.
	FragmentComponentB FragmentKind = "component B"

	// FragmentSpecification holds the observer automata checked against A and B.
	FragmentSpecification FragmentKind = "specification"

	// FragmentInitDefinition is everything after the specification end marker.
	FragmentInitDefinition FragmentKind = "init definition"
)

// Fragment is one region of a Model together with the automata it declares.
type Fragment struct {
	Kind     FragmentKind
	Text     string
	Automata []AutomatonName
}

// InitialLocationTable maps each automaton to its declared initial location.
type InitialLocationTable map[AutomatonName]LocationName

// Lookup returns the initial location of automaton, if declared.
func (t InitialLocationTable) Lookup(automaton AutomatonName) (LocationName, bool) {
	location, ok := t[automaton]

	return location, ok
}

// OutputDocument is the reassembled model handed to the learner.
type OutputDocument struct {
	Path    Path
	Content string
}
