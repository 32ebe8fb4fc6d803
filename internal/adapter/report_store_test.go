package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/lswbridge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() m.Report {
	return m.Report{
		Model:            "models/sample.imi",
		Output:           "models/sample.lsw",
		Digest:           "abc123",
		Valuation:        m.Valuation{{Parameter: "c", Value: "5"}},
		ComponentA:       []m.AutomatonName{"P"},
		ComponentB:       []m.AutomatonName{"Q"},
		Specification:    []m.AutomatonName{"S"},
		InitialLocations: m.InitialLocationTable{"P": "l0", "Q": "m0", "S": "s0"},
		AnalysisLine:     "EMPTY CHECKING: {P} || {Q} || S",
	}
}

func TestLocalReportStore_SaveReport_CreatesDirectories(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), "reports", "nested", "run.yaml"))

	require.NoError(t, NewLocalReportStore().SaveReport(path, sampleReport()))

	info, err := os.Stat(string(path))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}

func TestLocalReportStore_SaveReport_YAMLShape(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), "run.yaml"))
	report := sampleReport().WithLearner(m.LearnerResult{
		Output:  m.LearnerOutput{Binary: "./learninglsw", ExitCode: 0},
		Passed:  true,
		Verdict: m.VerdictAbstraction,
	})

	require.NoError(t, NewLocalReportStore().SaveReport(path, report))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.Equal(t, "models/sample.imi", decoded["model"])
	assert.Equal(t, "abc123", decoded["sha256"])
	assert.Equal(t, []any{map[string]any{"parameter": "c", "value": "5"}}, decoded["valuation"])
	assert.Equal(t, map[string]any{"P": "l0", "Q": "m0", "S": "s0"}, decoded["initial_locations"])
	assert.Equal(t, map[string]any{
		"binary":    "./learninglsw",
		"exit_code": 0,
		"passed":    true,
		"verdict":   "abstraction",
	}, decoded["learner"])
}

func TestLocalReportStore_SaveReport_OmitsLearnerWhenNotRun(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), "run.yaml"))

	require.NoError(t, NewLocalReportStore().SaveReport(path, sampleReport()))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "learner:")
}

func TestLocalReportStore_LoadReport(t *testing.T) {
	rs := NewLocalReportStore()

	t.Run("reads back a saved report", func(t *testing.T) {
		path := m.Path(filepath.Join(t.TempDir(), "run.yaml"))
		report := sampleReport().WithLearner(m.LearnerResult{
			Output:  m.LearnerOutput{Binary: "./learninglsw", ExitCode: 2},
			Verdict: m.VerdictUnknown,
		})

		require.NoError(t, rs.SaveReport(path, report))

		loaded, err := rs.LoadReport(path)
		require.NoError(t, err)
		assert.Equal(t, report, loaded)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := rs.LoadReport(m.Path(filepath.Join(t.TempDir(), "absent.yaml")))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("model: [unterminated"), 0o644))

		_, err := rs.LoadReport(m.Path(path))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal report")
	})
}
