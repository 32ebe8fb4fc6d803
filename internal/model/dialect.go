package model

// Dialect gathers every marker, keyword and separator the translation relies
// on. All markers are literal text.
type Dialect struct {
	ComponentAStart    string `hcl:"component_a_start,optional"`
	ComponentAEnd      string `hcl:"component_a_end,optional"`
	ComponentBStart    string `hcl:"component_b_start,optional"`
	ComponentBEnd      string `hcl:"component_b_end,optional"`
	SpecificationStart string `hcl:"specification_start,optional"`
	SpecificationEnd   string `hcl:"specification_end,optional"`

	PairSeparator       string `hcl:"pair_separator,optional"`
	AssignmentSeparator string `hcl:"assignment_separator,optional"`

	AutomatonKeyword string `hcl:"automaton_keyword,optional"`
	LocationKeyword  string `hcl:"location_keyword,optional"`
	InitKeyword      string `hcl:"init_keyword,optional"`

	ModelExtension  string `hcl:"model_extension,optional"`
	OutputExtension string `hcl:"output_extension,optional"`

	AnalysisDirective string `hcl:"analysis_directive,optional"`

	AbstractionTag    string `hcl:"abstraction_tag,optional"`
	CounterExampleTag string `hcl:"counterexample_tag,optional"`
}

// DefaultDialect returns the IMITATOR to LSW dialect.
func DefaultDialect() Dialect {
	return Dialect{
		ComponentAStart:    "(* --- BEGIN COMPONENT A --- *)",
		ComponentAEnd:      "(* --- END COMPONENT A --- *)",
		ComponentBStart:    "(* --- BEGIN COMPONENT B --- *)",
		ComponentBEnd:      "(* --- END COMPONENT B --- *)",
		SpecificationStart: "(* --- BEGIN SPECIFICATION --- *)",
		SpecificationEnd:   "(* --- END SPECIFICATION --- *)",

		PairSeparator:       ",",
		AssignmentSeparator: "=",

		AutomatonKeyword: "automaton",
		LocationKeyword:  "loc",
		InitKeyword:      "INIT",

		ModelExtension:  ".imi",
		OutputExtension: ".lsw",

		AnalysisDirective: "EMPTY CHECKING",

		AbstractionTag:    "===ABSTRACTION===",
		CounterExampleTag: "===COUNTEREXAMPLE===",
	}
}

// Merge returns d with every empty field taken from fallback.
func (d Dialect) Merge(fallback Dialect) Dialect {
	pick := func(value, def string) string {
		if value == "" {
			return def
		}

		return value
	}

	return Dialect{
		ComponentAStart:     pick(d.ComponentAStart, fallback.ComponentAStart),
		ComponentAEnd:       pick(d.ComponentAEnd, fallback.ComponentAEnd),
		ComponentBStart:     pick(d.ComponentBStart, fallback.ComponentBStart),
		ComponentBEnd:       pick(d.ComponentBEnd, fallback.ComponentBEnd),
		SpecificationStart:  pick(d.SpecificationStart, fallback.SpecificationStart),
		SpecificationEnd:    pick(d.SpecificationEnd, fallback.SpecificationEnd),
		PairSeparator:       pick(d.PairSeparator, fallback.PairSeparator),
		AssignmentSeparator: pick(d.AssignmentSeparator, fallback.AssignmentSeparator),
		AutomatonKeyword:    pick(d.AutomatonKeyword, fallback.AutomatonKeyword),
		LocationKeyword:     pick(d.LocationKeyword, fallback.LocationKeyword),
		InitKeyword:         pick(d.InitKeyword, fallback.InitKeyword),
		ModelExtension:      pick(d.ModelExtension, fallback.ModelExtension),
		OutputExtension:     pick(d.OutputExtension, fallback.OutputExtension),
		AnalysisDirective:   pick(d.AnalysisDirective, fallback.AnalysisDirective),
		AbstractionTag:      pick(d.AbstractionTag, fallback.AbstractionTag),
		CounterExampleTag:   pick(d.CounterExampleTag, fallback.CounterExampleTag),
	}
}

// Attributes lists the dialect as ordered name/value pairs, using the same
// names as the dialect file.
func (d Dialect) Attributes() [][2]string {
	return [][2]string{
		{"component_a_start", d.ComponentAStart},
		{"component_a_end", d.ComponentAEnd},
		{"component_b_start", d.ComponentBStart},
		{"component_b_end", d.ComponentBEnd},
		{"specification_start", d.SpecificationStart},
		{"specification_end", d.SpecificationEnd},
		{"pair_separator", d.PairSeparator},
		{"assignment_separator", d.AssignmentSeparator},
		{"automaton_keyword", d.AutomatonKeyword},
		{"location_keyword", d.LocationKeyword},
		{"init_keyword", d.InitKeyword},
		{"model_extension", d.ModelExtension},
		{"output_extension", d.OutputExtension},
		{"analysis_directive", d.AnalysisDirective},
		{"abstraction_tag", d.AbstractionTag},
		{"counterexample_tag", d.CounterExampleTag},
	}
}
