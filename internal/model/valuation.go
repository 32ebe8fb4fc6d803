package model

// ParameterName identifies a model parameter.
type ParameterName string

// ValuationPair binds a parameter to the literal substituted for it.
type ValuationPair struct {
	Parameter ParameterName `yaml:"parameter"`
	Value     string        `yaml:"value"`
}

// Valuation is an ordered reference valuation (pi0).
type Valuation []ValuationPair
