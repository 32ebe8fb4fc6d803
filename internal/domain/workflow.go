// Package domain contains the model translation pipeline and the workflow
// around it.
package domain

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mouse-blink/lswbridge/internal/adapter"
	"github.com/mouse-blink/lswbridge/internal/controller"
	"github.com/mouse-blink/lswbridge/internal/ctxlog"
	m "github.com/mouse-blink/lswbridge/internal/model"
)

// ToolName is how lswbridge introduces itself.
const ToolName = "lswbridge"

const outputPerm os.FileMode = 0o644

// TranslateArgs describes one translation.
type TranslateArgs struct {
	Model     m.Path
	Valuation string
	// Debug dumps every fragment and the transformed model.
	Debug bool
	// Report, when set, is where a YAML summary of the run is saved.
	Report m.Path
}

// RunArgs describes a translation followed by a learner run.
type RunArgs struct {
	TranslateArgs
	Learner m.Path
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	// Translate writes the learner input for a model and returns what was derived.
	Translate(ctx context.Context, args TranslateArgs) (m.Translation, error)
	// Run translates the model, then hands it to the learner.
	Run(ctx context.Context, args RunArgs) error
}

type workflow struct {
	fsAdapter  adapter.ModelFSAdapter
	reports    adapter.ReportStore
	ui         controller.UI
	orch       Orchestrator
	translator Translator
	post       PostProcessor
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	fsAdapter adapter.ModelFSAdapter,
	reports adapter.ReportStore,
	ui controller.UI,
	orch Orchestrator,
	translator Translator,
	post PostProcessor,
) Workflow {
	return &workflow{
		fsAdapter:  fsAdapter,
		reports:    reports,
		ui:         ui,
		orch:       orch,
		translator: translator,
		post:       post,
	}
}

func (w *workflow) Translate(ctx context.Context, args TranslateArgs) (m.Translation, error) {
	if err := w.checkModel(args.Model); err != nil {
		return m.Translation{}, err
	}

	translation, err := w.translate(ctx, args)
	if err != nil {
		return m.Translation{}, err
	}

	if err := w.saveReport(ctx, args.Report, m.NewReport(translation)); err != nil {
		return m.Translation{}, err
	}

	w.ui.DisplayDone(ToolName)

	return translation, nil
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	logger := ctxlog.FromContext(ctx)

	if err := w.orch.CheckLearner(args.Learner); err != nil {
		return err
	}

	if err := w.checkModel(args.Model); err != nil {
		return err
	}

	translation, err := w.translate(ctx, args.TranslateArgs)
	if err != nil {
		return err
	}

	w.ui.DisplayStage("Calling the learning tool")

	result, err := w.orch.Learn(ctx, args.Learner, translation.Output.Path)
	if err != nil {
		return err
	}

	logger.Debug("Learner finished.", "exit_code", result.Output.ExitCode, "verdict", result.Verdict)
	w.ui.DisplayLearnerResult(result)

	if err := w.saveReport(ctx, args.Report, m.NewReport(translation).WithLearner(result)); err != nil {
		return err
	}

	if !result.Passed {
		return fmt.Errorf("%w: %s exited with %d", ErrLearnerFailed, args.Learner, result.Output.ExitCode)
	}

	if _, err := w.post.Process(translation, result); err != nil {
		if !errors.Is(err, ErrNotImplemented) {
			return err
		}

		w.ui.ShowNotImplemented(err)
	}

	w.ui.DisplayDone(ToolName)

	return nil
}

func (w *workflow) checkModel(path m.Path) error {
	info, err := w.fsAdapter.FileInfo(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrMissingModel, path)
		}

		return fmt.Errorf("failed to inspect model %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrMissingModel, path)
	}

	return nil
}

// translate reads, transforms and writes the model. Nothing is written unless
// the whole translation succeeds.
func (w *workflow) translate(ctx context.Context, args TranslateArgs) (m.Translation, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Translation started.", "model", args.Model, "valuation", args.Valuation)

	content, err := w.fsAdapter.ReadFile(args.Model)
	if err != nil {
		return m.Translation{}, fmt.Errorf("failed to read model %s: %w", args.Model, err)
	}

	if args.Debug {
		if err := w.ui.DisplayDocument("Model", string(content)); err != nil {
			return m.Translation{}, err
		}
	}

	w.ui.DisplayStage("Finding components, specification and init definition")

	translation, err := w.translator.Translate(m.Model(content), args.Model, args.Valuation)
	if err != nil {
		return m.Translation{}, err
	}

	logger.Debug("Model decomposed.",
		"automata_a", len(translation.ComponentA.Automata),
		"automata_b", len(translation.ComponentB.Automata),
		"automata_spec", len(translation.Specification.Automata),
		"initial_locations", len(translation.InitialLocations),
	)

	if args.Debug {
		if err := w.displayFragments(translation); err != nil {
			return m.Translation{}, err
		}
	}

	w.ui.DisplayStage("Finding automata names")
	w.ui.DisplayAutomata([]m.Fragment{translation.ComponentA, translation.ComponentB, translation.Specification})

	w.ui.DisplayStage("Gathering initial locations")
	w.ui.DisplayInitialLocations(translation.InitialLocations)

	w.ui.DisplayStage("Building reference valuation")
	w.ui.DisplayValuation(translation.Valuation)

	if args.Debug {
		if err := w.ui.DisplayDocument("Transformed model", translation.Output.Content); err != nil {
			return m.Translation{}, err
		}
	}

	w.ui.DisplayStage(fmt.Sprintf("Writing content to %q", translation.Output.Path))

	if err := w.fsAdapter.WriteFile(translation.Output.Path, []byte(translation.Output.Content), outputPerm); err != nil {
		return m.Translation{}, fmt.Errorf("failed to write %s: %w", translation.Output.Path, err)
	}

	digest, err := w.fsAdapter.HashFile(translation.Output.Path)
	if err != nil {
		return m.Translation{}, fmt.Errorf("failed to hash %s: %w", translation.Output.Path, err)
	}

	translation.Digest = digest
	w.ui.DisplayWritten(translation.Output, digest)
	logger.Debug("Translation written.", "output", translation.Output.Path, "sha256", digest)

	return translation, nil
}

// saveReport stores report at path. An empty path disables reports.
func (w *workflow) saveReport(ctx context.Context, path m.Path, report m.Report) error {
	if path == "" {
		return nil
	}

	if err := w.reports.SaveReport(path, report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("Report saved.", "path", path)

	return nil
}

func (w *workflow) displayFragments(translation m.Translation) error {
	for _, fragment := range []m.Fragment{
		translation.ComponentA,
		translation.ComponentB,
		translation.Specification,
		translation.InitDefinition,
	} {
		if err := w.ui.DisplayDocument(string(fragment.Kind), fragment.Text); err != nil {
			return err
		}
	}

	return nil
}
