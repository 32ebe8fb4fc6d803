package model

// Verdict is what the learner concluded about the composed model.
type Verdict string

const (
	// VerdictAbstraction means the learner produced an abstraction of component B.
	VerdictAbstraction Verdict = "abstraction"
	// VerdictCounterExample means the learner produced a counter-example trace.
	VerdictCounterExample Verdict = "counter-example"
	// VerdictUnknown means the learner output carried no recognised tag.
	VerdictUnknown Verdict = "unknown"
)

// LearnerOutput captures one invocation of the learning binary.
type LearnerOutput struct {
	Binary   Path
	Model    Path
	ExitCode int
	Stdout   string
	Stderr   string
}

// LearnerResult is the classified outcome of a learner invocation.
type LearnerResult struct {
	Output  LearnerOutput
	Passed  bool // true if the learner exited with status 0
	Verdict Verdict
}
