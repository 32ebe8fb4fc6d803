package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/mouse-blink/lswbridge/internal/domain"
	domainmocks "github.com/mouse-blink/lswbridge/internal/domain/mocks"
	m "github.com/mouse-blink/lswbridge/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleModel = `var x: clock; c: parameter;

(* --- BEGIN COMPONENT A --- *)
automaton P
loc l0: invariant x <= c
end
(* --- END COMPONENT A --- *)

(* --- BEGIN COMPONENT B --- *)
automaton Q
loc m0: invariant True
end
(* --- END COMPONENT B --- *)

(* --- BEGIN SPECIFICATION --- *)
automaton S
loc s0: invariant True
end
(* --- END SPECIFICATION --- *)

init := True
	& loc[P] = l0
	& loc[Q] = m0
	& loc[S] = s0
;
`

const sampleOutput = "\nautomaton P\nloc l0[INIT]: invariant x <= 5\nend\n" +
	"\nautomaton Q\nloc m0[INIT]: invariant True\nend\n" +
	"\nautomaton S\nloc s0[INIT]: invariant True\nend\n" +
	"EMPTY CHECKING: {P} || {Q} || S"

// newTestRootCmd builds a fresh command tree writing to out. Settings are
// looked up in an empty directory unless the args say otherwise.
func newTestRootCmd(t *testing.T, out *bytes.Buffer, args ...string) *cobra.Command {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newTranslateCmd(), newDialectCmd())
	cmd.SetOut(out)
	cmd.SetErr(out)

	hasSettings := false
	for _, arg := range args {
		if strings.HasPrefix(arg, "--settings") {
			hasSettings = true
		}
	}

	if !hasSettings {
		args = append(args, "--settings", filepath.Join(t.TempDir(), "settings.yaml"))
	}

	cmd.SetArgs(args)

	return cmd
}

// useWorkflow swaps the workflow factory for the duration of the test and
// records the configuration it was called with.
func useWorkflow(t *testing.T, wf domain.Workflow) *commandConfig {
	t.Helper()

	var seen commandConfig

	original := newWorkflow
	newWorkflow = func(_ *cobra.Command, cfg commandConfig) domain.Workflow {
		seen = cfg
		return wf
	}

	t.Cleanup(func() { newWorkflow = original })

	return &seen
}

func writeFile(t *testing.T, dir, name, content string, perm os.FileMode) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), perm))

	return path
}

func TestRootCmd_RunsLearner(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cfg := useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Run(mock.Anything, domain.RunArgs{
		TranslateArgs: domain.TranslateArgs{Model: "model.imi", Valuation: "c=5"},
		Learner:       "./learninglsw",
	}).Return(nil)

	var out bytes.Buffer
	require.NoError(t, newTestRootCmd(t, &out, "model.imi", "c=5").Execute())

	assert.Equal(t, m.DefaultDialect(), cfg.dialect)
	assert.False(t, cfg.rawSubstitution)
}

func TestRootCmd_Flags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cfg := useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Learner == "/opt/lsw/learninglsw" &&
			args.Debug &&
			args.Report == "run.yaml" &&
			args.Valuation == "p1=1,p2=2"
	})).Return(nil)

	var out bytes.Buffer
	cmd := newTestRootCmd(t, &out,
		"-b", "/opt/lsw/learninglsw",
		"--debug",
		"--report", "run.yaml",
		"--raw-substitution",
		"model.imi", "p1=1,p2=2",
	)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, m.Path("/opt/lsw/learninglsw"), cfg.learner)
	assert.True(t, cfg.rawSubstitution)
}

func TestRootCmd_NoLearn(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Translate(mock.Anything, domain.TranslateArgs{Model: "model.imi", Valuation: "c=5"}).
		Return(m.Translation{}, nil)

	var out bytes.Buffer
	require.NoError(t, newTestRootCmd(t, &out, "--no-learn", "model.imi", "c=5").Execute())

	mockWorkflow.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestRootCmd_WorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(domain.ErrMissingBinary)

	var out bytes.Buffer
	err := newTestRootCmd(t, &out, "model.imi", "c=5").Execute()
	require.ErrorIs(t, err, domain.ErrMissingBinary)
}

func TestRootCmd_ArgumentCount(t *testing.T) {
	for _, args := range [][]string{{}, {"model.imi"}, {"model.imi", "c=5", "extra"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			useWorkflow(t, domainmocks.NewMockWorkflow(t))

			var out bytes.Buffer
			err := newTestRootCmd(t, &out, args...).Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "accepts 2 arg(s)")
		})
	}
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	var out bytes.Buffer
	err := newTestRootCmd(t, &out, "--log-level", "loud", "model.imi", "c=5").Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRootCmd_SettingsPrecedence(t *testing.T) {
	dir := t.TempDir()
	dialectPath := writeFile(t, dir, "dialect.hcl", `init_keyword = "INITIAL"`, 0o644)
	settingsPath := writeFile(t, dir, "settings.yaml",
		"learner: /from/settings\ndialect: "+dialectPath+"\nlog_level: debug\n", 0o644)

	t.Run("settings fill unset flags", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		cfg := useWorkflow(t, mockWorkflow)
		mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(nil)

		var out bytes.Buffer
		require.NoError(t, newTestRootCmd(t, &out, "--settings", settingsPath, "model.imi", "c=5").Execute())

		assert.Equal(t, m.Path("/from/settings"), cfg.learner)
		assert.Equal(t, "INITIAL", cfg.dialect.InitKeyword)
		assert.Contains(t, out.String(), "Configuration resolved.")
	})

	t.Run("flags win", func(t *testing.T) {
		mockWorkflow := domainmocks.NewMockWorkflow(t)
		cfg := useWorkflow(t, mockWorkflow)
		mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(nil)

		var out bytes.Buffer
		cmd := newTestRootCmd(t, &out,
			"--settings", settingsPath,
			"--learner", "/from/flag",
			"--log-level", "error",
			"model.imi", "c=5",
		)
		require.NoError(t, cmd.Execute())

		assert.Equal(t, m.Path("/from/flag"), cfg.learner)
		assert.NotContains(t, out.String(), "Configuration resolved.")
	})
}

func TestTranslateCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Translate(mock.Anything, domain.TranslateArgs{Model: "model.imi", Valuation: "c=5", Debug: true}).
		Return(m.Translation{}, nil)

	var out bytes.Buffer
	require.NoError(t, newTestRootCmd(t, &out, "translate", "--debug", "model.imi", "c=5").Execute())
}

func TestDialectCmd(t *testing.T) {
	t.Run("default dialect", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, newTestRootCmd(t, &out, "dialect").Execute())

		assert.Contains(t, out.String(), `location_keyword`)
		assert.Contains(t, out.String(), `"(* --- BEGIN COMPONENT A --- *)"`)
	})

	t.Run("dialect file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "dialect.hcl", `analysis_directive = "EMPTINESS"`, 0o644)

		var out bytes.Buffer
		require.NoError(t, newTestRootCmd(t, &out, "dialect", "-d", path).Execute())

		assert.Contains(t, out.String(), `"EMPTINESS"`)
		assert.NotContains(t, out.String(), `"EMPTY CHECKING"`)
	})

	t.Run("broken dialect file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "dialect.hcl", `unknown_marker = "x"`, 0o644)

		var out bytes.Buffer
		err := newTestRootCmd(t, &out, "dialect", "--dialect", path).Execute()
		require.Error(t, err)
	})
}

func TestRootCmd_EndToEnd_Translate(t *testing.T) {
	t.Run("writes the learner input", func(t *testing.T) {
		dir := t.TempDir()
		model := writeFile(t, dir, "model.imi", sampleModel, 0o644)
		report := filepath.Join(dir, "reports", "run.yaml")

		var out bytes.Buffer
		require.NoError(t, newTestRootCmd(t, &out, "--no-learn", "--report", report, model, "c=5").Execute())

		content, err := os.ReadFile(filepath.Join(dir, "model.lsw"))
		require.NoError(t, err)
		assert.Equal(t, sampleOutput, string(content))

		assert.Contains(t, out.String(), "Finding automata names…")
		assert.Contains(t, out.String(), "…The end of lswbridge!")
		assert.FileExists(t, report)
	})

	t.Run("malformed valuation writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		model := writeFile(t, dir, "model.imi", sampleModel, 0o644)

		var out bytes.Buffer
		err := newTestRootCmd(t, &out, "translate", model, "c=5=6").Execute()
		require.ErrorIs(t, err, domain.ErrMalformedPair)

		assert.NoFileExists(t, filepath.Join(dir, "model.lsw"))
	})

	t.Run("missing model", func(t *testing.T) {
		var out bytes.Buffer
		err := newTestRootCmd(t, &out, "translate", filepath.Join(t.TempDir(), "absent.imi"), "c=5").Execute()
		require.ErrorIs(t, err, domain.ErrMissingModel)
	})
}

func TestRootCmd_EndToEnd_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell learner scripts need a POSIX shell")
	}

	t.Run("abstraction", func(t *testing.T) {
		dir := t.TempDir()
		model := writeFile(t, dir, "model.imi", sampleModel, 0o644)
		learner := writeFile(t, dir, "learninglsw", "#!/bin/sh\necho \"learning $1\"\necho ===ABSTRACTION===\n", 0o755)

		var out bytes.Buffer
		require.NoError(t, newTestRootCmd(t, &out, "-b", learner, model, "c=5").Execute())

		output := out.String()
		assert.Contains(t, output, "learning "+filepath.Join(dir, "model.lsw"))
		assert.Contains(t, output, "abstraction detected")
		assert.Contains(t, output, "Skipped: ")
		assert.Contains(t, output, "…The end of lswbridge!")
	})

	t.Run("failing learner", func(t *testing.T) {
		dir := t.TempDir()
		model := writeFile(t, dir, "model.imi", sampleModel, 0o644)
		learner := writeFile(t, dir, "learninglsw", "#!/bin/sh\nexit 4\n", 0o755)

		var out bytes.Buffer
		err := newTestRootCmd(t, &out, "-b", learner, model, "c=5").Execute()
		require.ErrorIs(t, err, domain.ErrLearnerFailed)

		assert.FileExists(t, filepath.Join(dir, "model.lsw"))
	})

	t.Run("missing learner", func(t *testing.T) {
		dir := t.TempDir()
		model := writeFile(t, dir, "model.imi", sampleModel, 0o644)

		var out bytes.Buffer
		err := newTestRootCmd(t, &out, "-b", filepath.Join(dir, "absent"), model, "c=5").Execute()
		require.ErrorIs(t, err, domain.ErrMissingBinary)

		assert.NoFileExists(t, filepath.Join(dir, "model.lsw"))
	})
}

func TestInit(t *testing.T) {
	if fsAdapter == nil {
		t.Error("init() fsAdapter is nil")
	}

	if dialectLoader == nil {
		t.Error("init() dialectLoader is nil")
	}

	if reportStore == nil {
		t.Error("init() reportStore is nil")
	}

	if newWorkflow == nil {
		t.Error("init() newWorkflow is nil")
	}

	if !rootCmd.HasSubCommands() {
		t.Error("rootCmd has no subcommands")
	}
}
