package domain

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	adaptermocks "github.com/mouse-blink/lswbridge/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/lswbridge/internal/controller/mocks"
	m "github.com/mouse-blink/lswbridge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeFileInfo struct {
	name string
	dir  bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return 0o644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }

type workflowFixture struct {
	fs      *adaptermocks.MockModelFSAdapter
	learner *adaptermocks.MockLearnerAdapter
	reports *adaptermocks.MockReportStore
	ui      *controllermocks.MockUI
	wf      Workflow
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	t.Helper()

	fs := adaptermocks.NewMockModelFSAdapter(t)
	learner := adaptermocks.NewMockLearnerAdapter(t)
	reports := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	dialect := m.DefaultDialect()

	return workflowFixture{
		fs:      fs,
		learner: learner,
		reports: reports,
		ui:      ui,
		wf: NewWorkflow(
			fs,
			reports,
			ui,
			NewOrchestrator(fs, learner, dialect),
			NewTranslator(dialect),
			NewPostProcessor(),
		),
	}
}

// allowProgress accepts every progress report the translation makes.
func (f workflowFixture) allowProgress() {
	f.ui.EXPECT().DisplayStage(mock.Anything).Return().Maybe()
	f.ui.EXPECT().DisplayAutomata(mock.Anything).Return().Maybe()
	f.ui.EXPECT().DisplayInitialLocations(mock.Anything).Return().Maybe()
	f.ui.EXPECT().DisplayValuation(mock.Anything).Return().Maybe()
}

func (f workflowFixture) expectModel(path m.Path, content string) {
	f.fs.EXPECT().FileInfo(path).Return(fakeFileInfo{name: string(path)}, nil)
	f.fs.EXPECT().ReadFile(path).Return([]byte(content), nil)
}

func TestWorkflow_Translate(t *testing.T) {
	t.Run("writes the translated model", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.allowProgress()
		f.expectModel("sample.imi", sampleModel)

		f.fs.EXPECT().WriteFile(m.Path("sample.lsw"), []byte(sampleOutput), os.FileMode(0o644)).Return(nil)
		f.fs.EXPECT().HashFile(m.Path("sample.lsw")).Return("abc123", nil)
		f.ui.EXPECT().DisplayWritten(m.OutputDocument{Path: "sample.lsw", Content: sampleOutput}, "abc123").Return()
		f.ui.EXPECT().DisplayDone(ToolName).Return()

		translation, err := f.wf.Translate(context.Background(), TranslateArgs{Model: "sample.imi", Valuation: "c=5"})
		require.NoError(t, err)

		assert.Equal(t, "abc123", translation.Digest)
		assert.Equal(t, sampleOutput, translation.Output.Content)
	})

	t.Run("reports automata, locations and valuation", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.expectModel("sample.imi", sampleModel)

		f.ui.EXPECT().DisplayStage(mock.Anything).Return()
		f.ui.EXPECT().DisplayAutomata(mock.MatchedBy(func(fragments []m.Fragment) bool {
			return len(fragments) == 3 &&
				fragments[0].Kind == m.FragmentComponentA &&
				assert.ObjectsAreEqual([]m.AutomatonName{"Q"}, fragments[1].Automata)
		})).Return()
		f.ui.EXPECT().DisplayInitialLocations(m.InitialLocationTable{"P": "l0", "Q": "m0", "S": "s0"}).Return()
		f.ui.EXPECT().DisplayValuation(m.Valuation{{Parameter: "c", Value: "5"}}).Return()
		f.fs.EXPECT().WriteFile(m.Path("sample.lsw"), mock.Anything, mock.Anything).Return(nil)
		f.fs.EXPECT().HashFile(m.Path("sample.lsw")).Return("abc123", nil)
		f.ui.EXPECT().DisplayWritten(mock.Anything, "abc123").Return()
		f.ui.EXPECT().DisplayDone(ToolName).Return()

		_, err := f.wf.Translate(context.Background(), TranslateArgs{Model: "sample.imi", Valuation: "c=5"})
		require.NoError(t, err)
	})

	t.Run("debug dumps fragments and the transformed model", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.allowProgress()
		f.expectModel("sample.imi", sampleModel)

		var titles []string
		f.ui.EXPECT().DisplayDocument(mock.Anything, mock.Anything).
			Run(func(title string, _ string) { titles = append(titles, title) }).
			Return(nil)
		f.fs.EXPECT().WriteFile(m.Path("sample.lsw"), mock.Anything, mock.Anything).Return(nil)
		f.fs.EXPECT().HashFile(m.Path("sample.lsw")).Return("abc123", nil)
		f.ui.EXPECT().DisplayWritten(mock.Anything, mock.Anything).Return()
		f.ui.EXPECT().DisplayDone(ToolName).Return()

		_, err := f.wf.Translate(context.Background(), TranslateArgs{Model: "sample.imi", Valuation: "c=5", Debug: true})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"Model",
			string(m.FragmentComponentA),
			string(m.FragmentComponentB),
			string(m.FragmentSpecification),
			string(m.FragmentInitDefinition),
			"Transformed model",
		}, titles)
	})

	t.Run("malformed valuation writes nothing", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.allowProgress()
		f.expectModel("sample.imi", sampleModel)

		_, err := f.wf.Translate(context.Background(), TranslateArgs{Model: "sample.imi", Valuation: "c=5=6"})
		require.ErrorIs(t, err, ErrMalformedPair)

		f.fs.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("saves a report when asked", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.allowProgress()
		f.expectModel("sample.imi", sampleModel)

		f.fs.EXPECT().WriteFile(m.Path("sample.lsw"), mock.Anything, mock.Anything).Return(nil)
		f.fs.EXPECT().HashFile(m.Path("sample.lsw")).Return("abc123", nil)
		f.ui.EXPECT().DisplayWritten(mock.Anything, mock.Anything).Return()
		f.reports.EXPECT().SaveReport(m.Path("run.yaml"), mock.MatchedBy(func(report m.Report) bool {
			return report.Digest == "abc123" && report.Output == "sample.lsw" && report.Learner == nil
		})).Return(nil)
		f.ui.EXPECT().DisplayDone(ToolName).Return()

		_, err := f.wf.Translate(context.Background(), TranslateArgs{Model: "sample.imi", Valuation: "c=5", Report: "run.yaml"})
		require.NoError(t, err)
	})

	t.Run("missing model", func(t *testing.T) {
		f := newWorkflowFixture(t)

		f.fs.EXPECT().FileInfo(m.Path("absent.imi")).Return(nil, os.ErrNotExist)

		_, err := f.wf.Translate(context.Background(), TranslateArgs{Model: "absent.imi", Valuation: "c=5"})
		require.ErrorIs(t, err, ErrMissingModel)
	})

	t.Run("model is a directory", func(t *testing.T) {
		f := newWorkflowFixture(t)

		f.fs.EXPECT().FileInfo(m.Path("models")).Return(fakeFileInfo{name: "models", dir: true}, nil)

		_, err := f.wf.Translate(context.Background(), TranslateArgs{Model: "models", Valuation: "c=5"})
		require.ErrorIs(t, err, ErrMissingModel)
	})

	t.Run("write failure", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.allowProgress()
		f.expectModel("sample.imi", sampleModel)
		boom := errors.New("read-only file system")

		f.fs.EXPECT().WriteFile(m.Path("sample.lsw"), mock.Anything, mock.Anything).Return(boom)

		_, err := f.wf.Translate(context.Background(), TranslateArgs{Model: "sample.imi", Valuation: "c=5"})
		require.ErrorIs(t, err, boom)
	})
}

func TestWorkflow_Run(t *testing.T) {
	args := RunArgs{
		TranslateArgs: TranslateArgs{Model: "sample.imi", Valuation: "c=5"},
		Learner:       "./learninglsw",
	}

	expectWritten := func(f workflowFixture) {
		f.fs.EXPECT().WriteFile(m.Path("sample.lsw"), []byte(sampleOutput), os.FileMode(0o644)).Return(nil)
		f.fs.EXPECT().HashFile(m.Path("sample.lsw")).Return("abc123", nil)
		f.ui.EXPECT().DisplayWritten(mock.Anything, "abc123").Return()
	}

	t.Run("runs the learner on the written model", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.allowProgress()
		f.fs.EXPECT().IsExecutable(m.Path("./learninglsw")).Return(true, nil)
		f.expectModel("sample.imi", sampleModel)
		expectWritten(f)

		output := m.LearnerOutput{Binary: "./learninglsw", Model: "sample.lsw", Stdout: "===ABSTRACTION===\n"}
		f.learner.EXPECT().Run(mock.Anything, m.Path("./learninglsw"), m.Path("sample.lsw")).Return(output, nil)
		f.ui.EXPECT().DisplayLearnerResult(m.LearnerResult{Output: output, Passed: true, Verdict: m.VerdictAbstraction}).Return()
		f.ui.EXPECT().ShowNotImplemented(mock.MatchedBy(func(err error) bool {
			return errors.Is(err, ErrNotImplemented)
		})).Return()
		f.ui.EXPECT().DisplayDone(ToolName).Return()

		require.NoError(t, f.wf.Run(context.Background(), args))
	})

	t.Run("checks the learner before reading the model", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.fs.EXPECT().IsExecutable(m.Path("./learninglsw")).Return(false, nil)

		err := f.wf.Run(context.Background(), args)
		require.ErrorIs(t, err, ErrMissingBinary)

		f.fs.AssertNotCalled(t, "ReadFile", mock.Anything)
	})

	t.Run("failing learner", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.allowProgress()
		f.fs.EXPECT().IsExecutable(m.Path("./learninglsw")).Return(true, nil)
		f.expectModel("sample.imi", sampleModel)
		expectWritten(f)

		f.learner.EXPECT().Run(mock.Anything, m.Path("./learninglsw"), m.Path("sample.lsw")).
			Return(m.LearnerOutput{ExitCode: 3}, nil)
		f.ui.EXPECT().DisplayLearnerResult(mock.Anything).Return()

		err := f.wf.Run(context.Background(), args)
		require.ErrorIs(t, err, ErrLearnerFailed)
		assert.Contains(t, err.Error(), "exited with 3")
	})

	t.Run("failing learner is still reported", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.allowProgress()
		f.fs.EXPECT().IsExecutable(m.Path("./learninglsw")).Return(true, nil)
		f.expectModel("sample.imi", sampleModel)
		expectWritten(f)

		f.learner.EXPECT().Run(mock.Anything, m.Path("./learninglsw"), m.Path("sample.lsw")).
			Return(m.LearnerOutput{Binary: "./learninglsw", ExitCode: 1}, nil)
		f.ui.EXPECT().DisplayLearnerResult(mock.Anything).Return()
		f.reports.EXPECT().SaveReport(m.Path("run.yaml"), mock.MatchedBy(func(report m.Report) bool {
			return report.Learner != nil && report.Learner.ExitCode == 1 && !report.Learner.Passed
		})).Return(nil)

		reported := args
		reported.Report = "run.yaml"

		err := f.wf.Run(context.Background(), reported)
		require.ErrorIs(t, err, ErrLearnerFailed)
	})

	t.Run("translation failure never calls the learner", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.allowProgress()
		f.fs.EXPECT().IsExecutable(m.Path("./learninglsw")).Return(true, nil)
		f.expectModel("sample.imi", "no tags at all")

		err := f.wf.Run(context.Background(), args)
		require.ErrorIs(t, err, ErrSubstringNotFound)

		f.learner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	})
}
