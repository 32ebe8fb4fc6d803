package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	m "github.com/mouse-blink/lswbridge/internal/model"
	"golang.org/x/sync/errgroup"
)

// LearnerAdapter runs the external learning binary.
type LearnerAdapter interface {
	// Run executes binary with model as its only argument and waits for it.
	// A non-zero exit status is reported in the output, not as an error.
	Run(ctx context.Context, binary, model m.Path) (m.LearnerOutput, error)
}

// LocalLearnerAdapter runs the learner as a child process. Its output is
// captured and, when echo writers are set, streamed to them as it arrives.
type LocalLearnerAdapter struct {
	stdout io.Writer
	stderr io.Writer
}

// NewLocalLearnerAdapter constructs a LocalLearnerAdapter. Nil writers
// disable echoing.
func NewLocalLearnerAdapter(stdout, stderr io.Writer) *LocalLearnerAdapter {
	return &LocalLearnerAdapter{stdout: stdout, stderr: stderr}
}

// Run starts binary, drains both pipes concurrently and waits for exit.
func (a *LocalLearnerAdapter) Run(ctx context.Context, binary, model m.Path) (m.LearnerOutput, error) {
	// #nosec G204 - running the configured learner is the whole point
	cmd := exec.CommandContext(ctx, string(binary), string(model))

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return m.LearnerOutput{}, fmt.Errorf("failed to attach stdout: %w", err)
	}

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return m.LearnerOutput{}, fmt.Errorf("failed to attach stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return m.LearnerOutput{}, fmt.Errorf("failed to start %s: %w", binary, err)
	}

	var stdout, stderr bytes.Buffer

	var g errgroup.Group

	g.Go(func() error {
		_, err := io.Copy(teeTo(&stdout, a.stdout), stdoutPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(teeTo(&stderr, a.stderr), stderrPipe)
		return err
	})

	copyErr := g.Wait()
	waitErr := cmd.Wait()

	output := m.LearnerOutput{
		Binary: binary,
		Model:  model,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		output.ExitCode = exitErr.ExitCode()
		return output, nil
	}

	if waitErr != nil {
		return output, waitErr
	}

	if copyErr != nil {
		return output, fmt.Errorf("failed to read learner output: %w", copyErr)
	}

	return output, nil
}

func teeTo(buf *bytes.Buffer, echo io.Writer) io.Writer {
	if echo == nil {
		return buf
	}

	return io.MultiWriter(buf, echo)
}
