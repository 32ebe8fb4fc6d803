package model

// Report summarises one lswbridge run. It is what --report writes.
type Report struct {
	Model            Path                 `yaml:"model"`
	Output           Path                 `yaml:"output"`
	Digest           string               `yaml:"sha256"`
	Valuation        Valuation            `yaml:"valuation"`
	ComponentA       []AutomatonName      `yaml:"component_a"`
	ComponentB       []AutomatonName      `yaml:"component_b"`
	Specification    []AutomatonName      `yaml:"specification"`
	InitialLocations InitialLocationTable `yaml:"initial_locations"`
	AnalysisLine     string               `yaml:"analysis_line"`
	Learner          *LearnerSummary      `yaml:"learner,omitempty"`
}

// LearnerSummary is the part of a learner invocation worth keeping.
type LearnerSummary struct {
	Binary   Path    `yaml:"binary"`
	ExitCode int     `yaml:"exit_code"`
	Passed   bool    `yaml:"passed"`
	Verdict  Verdict `yaml:"verdict"`
}

// NewReport builds the report of a written translation.
func NewReport(t Translation) Report {
	return Report{
		Model:            t.Input,
		Output:           t.Output.Path,
		Digest:           t.Digest,
		Valuation:        t.Valuation,
		ComponentA:       t.ComponentA.Automata,
		ComponentB:       t.ComponentB.Automata,
		Specification:    t.Specification.Automata,
		InitialLocations: t.InitialLocations,
		AnalysisLine:     t.AnalysisLine,
	}
}

// WithLearner returns r completed with the outcome of the learner.
func (r Report) WithLearner(result LearnerResult) Report {
	r.Learner = &LearnerSummary{
		Binary:   result.Output.Binary,
		ExitCode: result.Output.ExitCode,
		Passed:   result.Passed,
		Verdict:  result.Verdict,
	}

	return r
}
