// Package controller provides output adapters for displaying translation progress and results.
package controller

import (
	"io"
	"os"

	m "github.com/mouse-blink/lswbridge/internal/model"
	"github.com/spf13/cobra"
)

// UI defines what the workflow reports while it runs.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayStage(stage string)
	DisplayAutomata(fragments []m.Fragment)
	DisplayInitialLocations(table m.InitialLocationTable)
	DisplayValuation(valuation m.Valuation)
	// DisplayDocument shows a (possibly long) piece of model text.
	DisplayDocument(title string, content string) error
	DisplayWritten(doc m.OutputDocument, digest string)
	DisplayLearnerResult(result m.LearnerResult)
	// ShowNotImplemented reports a step that exists only as a placeholder.
	ShowNotImplemented(err error)
	DisplayDone(name string)
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (lipgloss + Bubble Tea pager).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
