package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/lswbridge/internal/model"
	"gopkg.in/yaml.v3"
)

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.Report) error
	LoadReport(path m.Path) (m.Report, error)
}

// LocalReportStore keeps reports as YAML files on the local disk.
type LocalReportStore struct{}

// NewLocalReportStore constructs a ReportStore backed by the local disk.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report to path, creating parent directories as needed.
func (rs *LocalReportStore) SaveReport(path m.Path, report m.Report) error {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("failed to unmarshal report %s: %w", path, err)
	}

	return report, nil
}
