package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/mouse-blink/lswbridge/internal/adapter"
	m "github.com/mouse-blink/lswbridge/internal/model"
)

// Orchestrator coordinates running the learning binary on a translated model
// and classifying what it reports.
type Orchestrator interface {
	CheckLearner(binary m.Path) error
	Learn(ctx context.Context, binary, model m.Path) (m.LearnerResult, error)
}

type orchestrator struct {
	fsAdapter      adapter.ModelFSAdapter
	learnerAdapter adapter.LearnerAdapter
	dialect        m.Dialect
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem and learner adapters.
func NewOrchestrator(fsAdapter adapter.ModelFSAdapter, learnerAdapter adapter.LearnerAdapter, dialect m.Dialect) Orchestrator {
	return &orchestrator{
		fsAdapter:      fsAdapter,
		learnerAdapter: learnerAdapter,
		dialect:        dialect,
	}
}

// CheckLearner verifies that binary exists and is executable.
func (o *orchestrator) CheckLearner(binary m.Path) error {
	ok, err := o.fsAdapter.IsExecutable(binary)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", binary, err)
	}

	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingBinary, binary)
	}

	return nil
}

// Learn runs binary with model as its sole argument.
func (o *orchestrator) Learn(ctx context.Context, binary, model m.Path) (m.LearnerResult, error) {
	output, err := o.learnerAdapter.Run(ctx, binary, model)
	if err != nil {
		return m.LearnerResult{}, fmt.Errorf("failed to run learner %s: %w", binary, err)
	}

	return m.LearnerResult{
		Output:  output,
		Passed:  output.ExitCode == 0,
		Verdict: o.verdictFor(output.Stdout),
	}, nil
}

func (o *orchestrator) verdictFor(stdout string) m.Verdict {
	switch {
	case o.dialect.AbstractionTag != "" && strings.Contains(stdout, o.dialect.AbstractionTag):
		return m.VerdictAbstraction
	case o.dialect.CounterExampleTag != "" && strings.Contains(stdout, o.dialect.CounterExampleTag):
		return m.VerdictCounterExample
	default:
		return m.VerdictUnknown
	}
}
