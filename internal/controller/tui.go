package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/lswbridge/internal/model"
	"golang.org/x/term"
)

var (
	stageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// TUI implements UI with styled terminal output. Documents taller than the
// terminal open in a Bubble Tea pager.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayStage prints a progress line.
func (t *TUI) DisplayStage(stage string) {
	_, _ = fmt.Fprintln(t.output, stageStyle.Render("▸ "+stage+"…"))
}

// DisplayAutomata lists the automata of each fragment.
func (t *TUI) DisplayAutomata(fragments []m.Fragment) {
	width := 0
	for _, fragment := range fragments {
		width = max(width, lipgloss.Width(string(fragment.Kind)))
	}

	label := labelStyle.Width(width + 2)

	for _, fragment := range fragments {
		names := mutedStyle.Render("none")
		if len(fragment.Automata) > 0 {
			names = nameStyle.Render(joinAutomata(fragment.Automata))
		}

		_, _ = fmt.Fprintf(t.output, "    %s%s\n", label.Render(string(fragment.Kind)), names)
	}
}

// DisplayInitialLocations lists loc[automaton] = location bindings.
func (t *TUI) DisplayInitialLocations(table m.InitialLocationTable) {
	for _, name := range sortedAutomata(table) {
		_, _ = fmt.Fprintf(t.output, "    loc[%s] = %s\n", nameStyle.Render(string(name)), labelStyle.Render(string(table[name])))
	}
}

// DisplayValuation lists pi0.
func (t *TUI) DisplayValuation(valuation m.Valuation) {
	for _, pair := range valuation {
		_, _ = fmt.Fprintf(t.output, "    v(%s) = %s\n", nameStyle.Render(string(pair.Parameter)), labelStyle.Render(pair.Value))
	}
}

// DisplayDocument prints content, or pages it when it does not fit.
func (t *TUI) DisplayDocument(title string, content string) error {
	model := newDocumentModel(title, content)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.resize(width, height)
		}
	}

	if !model.needsPaging() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayWritten reports the output file.
func (t *TUI) DisplayWritten(doc m.OutputDocument, digest string) {
	_, _ = fmt.Fprintf(t.output, "%s %s %s\n",
		successStyle.Render("✓ wrote"),
		labelStyle.Render(string(doc.Path)),
		mutedStyle.Render(fmt.Sprintf("(%d bytes, sha256 %s)", len(doc.Content), shortDigest(digest))),
	)
}

// DisplayLearnerResult reports how the learner finished.
func (t *TUI) DisplayLearnerResult(result m.LearnerResult) {
	status := successStyle.Render(fmt.Sprintf("exit %d", result.Output.ExitCode))
	if !result.Passed {
		status = failureStyle.Render(fmt.Sprintf("exit %d", result.Output.ExitCode))
	}

	_, _ = fmt.Fprintf(t.output, "%s %s → %s, %s\n",
		stageStyle.Render("▸ learner"),
		mutedStyle.Render(strings.Join([]string{string(result.Output.Binary), string(result.Output.Model)}, " ")),
		status,
		formatVerdict(result.Verdict),
	)
}

// ShowNotImplemented reports a placeholder step.
func (t *TUI) ShowNotImplemented(err error) {
	_, _ = fmt.Fprintln(t.output, warningStyle.Render("! skipped: "+err.Error()))
}

// DisplayDone prints the confirmation message.
func (t *TUI) DisplayDone(name string) {
	_, _ = fmt.Fprintln(t.output, successStyle.Render("…The end of "+name+"!"))
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}

	return digest
}
