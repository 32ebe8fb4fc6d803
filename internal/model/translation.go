package model

// Translation holds everything derived from one model during a run.
type Translation struct {
	Input            Path
	ComponentA       Fragment
	ComponentB       Fragment
	Specification    Fragment
	InitDefinition   Fragment
	InitialLocations InitialLocationTable
	Valuation        Valuation
	AnalysisLine     string
	Output           OutputDocument
	// Digest is the hex SHA-256 of Output.Content once written.
	Digest string
}
