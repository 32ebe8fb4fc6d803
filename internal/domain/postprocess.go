package domain

import (
	"fmt"

	m "github.com/mouse-blink/lswbridge/internal/model"
)

// PostProcessor builds the refined model from what the learner returned.
type PostProcessor interface {
	Process(translation m.Translation, result m.LearnerResult) (m.OutputDocument, error)
}

type pendingPostProcessor struct{}

// NewPostProcessor returns the PostProcessor used by the CLI. Neither the
// abstraction nor the counter-example rebuild exists yet; both report
// ErrNotImplemented.
func NewPostProcessor() PostProcessor {
	return pendingPostProcessor{}
}

func (pendingPostProcessor) Process(_ m.Translation, result m.LearnerResult) (m.OutputDocument, error) {
	switch result.Verdict {
	case m.VerdictAbstraction:
		// TODO: drop the loc[] bindings of component B automata, bind the
		// abstraction automaton and rebuild header + A + abstraction + footer.
		return m.OutputDocument{}, fmt.Errorf("rebuilding model from abstraction: %w", ErrNotImplemented)
	case m.VerdictCounterExample:
		// TODO: bind the trace automaton and rebuild header + A + B + trace + footer.
		return m.OutputDocument{}, fmt.Errorf("rebuilding model from counter-example: %w", ErrNotImplemented)
	default:
		return m.OutputDocument{}, fmt.Errorf("retrieving learner result: %w", ErrNotImplemented)
	}
}
