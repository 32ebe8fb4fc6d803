package domain

import "errors"

// Errors returned by the translation pipeline. Every one of them aborts the
// run; callers match them with errors.Is.
var (
	ErrSubstringNotFound = errors.New("substring not found")
	ErrMalformedPair     = errors.New("malformed valuation pair")
	ErrUnknownAutomaton  = errors.New("no initial location declared")
	ErrLocationNotFound  = errors.New("initial location not found")
	ErrMissingModel      = errors.New("model file does not exist")
	ErrMissingBinary     = errors.New("learner binary does not exist or is not executable")
	ErrLearnerFailed     = errors.New("learner exited with non-zero status")
	ErrNotImplemented    = errors.New("not implemented")
)
