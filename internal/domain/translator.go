package domain

import (
	m "github.com/mouse-blink/lswbridge/internal/model"
)

// Translator turns a tagged model into the document consumed by the learner.
type Translator interface {
	Translate(model m.Model, input m.Path, valuation string) (m.Translation, error)
}

type translator struct {
	dialect  m.Dialect
	rewriter Rewriter
}

// NewTranslator creates a Translator for dialect backed by the token
// rewriter.
func NewTranslator(dialect m.Dialect) Translator {
	return NewTranslatorWithRewriter(dialect, NewTokenRewriter())
}

// NewTranslatorWithRewriter creates a Translator using the given Rewriter.
func NewTranslatorWithRewriter(dialect m.Dialect, rewriter Rewriter) Translator {
	return &translator{
		dialect:  dialect,
		rewriter: rewriter,
	}
}

// Translate runs the whole pipeline. It performs no I/O: the returned
// translation carries the output document and its name, ready to be written.
func (t *translator) Translate(model m.Model, input m.Path, valuation string) (m.Translation, error) {
	parts, err := Decompose(model, t.dialect)
	if err != nil {
		return m.Translation{}, err
	}

	parts.ComponentA.Automata = AutomataNames(parts.ComponentA.Text, t.dialect)
	parts.ComponentB.Automata = AutomataNames(parts.ComponentB.Text, t.dialect)
	parts.Specification.Automata = AutomataNames(parts.Specification.Text, t.dialect)

	table := InitialLocations(parts.InitDefinition.Text, t.dialect)

	pi0, err := ParseValuation(valuation, t.dialect)
	if err != nil {
		return m.Translation{}, err
	}

	valuatedA := parts.ComponentA
	valuatedA.Text = Valuate(t.rewriter, parts.ComponentA.Text, pi0)

	annotatedA, err := Annotate(t.rewriter, valuatedA, table, t.dialect)
	if err != nil {
		return m.Translation{}, err
	}

	annotatedB, err := Annotate(t.rewriter, parts.ComponentB, table, t.dialect)
	if err != nil {
		return m.Translation{}, err
	}

	annotatedSpec, err := Annotate(t.rewriter, parts.Specification, table, t.dialect)
	if err != nil {
		return m.Translation{}, err
	}

	line := AnalysisLine(parts.ComponentA.Automata, parts.ComponentB.Automata, parts.Specification.Automata, t.dialect)

	return m.Translation{
		Input:            input,
		ComponentA:       parts.ComponentA,
		ComponentB:       parts.ComponentB,
		Specification:    parts.Specification,
		InitDefinition:   parts.InitDefinition,
		InitialLocations: table,
		Valuation:        pi0,
		AnalysisLine:     line,
		Output: m.OutputDocument{
			Path:    OutputName(input, t.dialect),
			Content: Assemble(annotatedA, annotatedB, annotatedSpec, line),
		},
	}, nil
}
