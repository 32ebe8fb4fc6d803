package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	m "github.com/mouse-blink/lswbridge/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayStage prints a progress line.
func (s *SimpleUI) DisplayStage(stage string) {
	s.printf("%s…\n", stage)
}

// DisplayAutomata prints the automata found in each fragment.
func (s *SimpleUI) DisplayAutomata(fragments []m.Fragment) {
	rows := make([][]string, 0, len(fragments))
	for _, fragment := range fragments {
		rows = append(rows, []string{string(fragment.Kind), joinAutomata(fragment.Automata)})
	}

	s.renderTable([]string{"Fragment", "Automata"}, rows)
}

// DisplayInitialLocations prints the initial location table sorted by automaton.
func (s *SimpleUI) DisplayInitialLocations(table m.InitialLocationTable) {
	names := sortedAutomata(table)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{string(name), string(table[name])})
	}

	s.renderTable([]string{"Automaton", "Initial location"}, rows)
}

// DisplayValuation prints pi0 in input order.
func (s *SimpleUI) DisplayValuation(valuation m.Valuation) {
	rows := make([][]string, 0, len(valuation))
	for _, pair := range valuation {
		rows = append(rows, []string{string(pair.Parameter), pair.Value})
	}

	s.renderTable([]string{"Parameter", "Value"}, rows)
}

// DisplayDocument prints content under a title.
func (s *SimpleUI) DisplayDocument(title string, content string) error {
	s.printf("\n%s:\n%s\n", title, content)

	return nil
}

// DisplayWritten reports the output file.
func (s *SimpleUI) DisplayWritten(doc m.OutputDocument, digest string) {
	s.printf("Wrote %q (%d bytes, sha256 %s)\n", doc.Path, len(doc.Content), digest)
}

// DisplayLearnerResult reports how the learner finished.
func (s *SimpleUI) DisplayLearnerResult(result m.LearnerResult) {
	s.printf("Command: %q\n", strings.Join([]string{string(result.Output.Binary), string(result.Output.Model)}, " "))
	s.printf("Learner exited with status %d (%s)\n", result.Output.ExitCode, formatVerdict(result.Verdict))
}

// ShowNotImplemented reports a placeholder step.
func (s *SimpleUI) ShowNotImplemented(err error) {
	s.printf("Skipped: %v\n", err)
}

// DisplayDone prints the confirmation message.
func (s *SimpleUI) DisplayDone(name string) {
	s.printf("\n…The end of %s!\n", name)
}

func (s *SimpleUI) renderTable(header []string, rows [][]string) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.AppendBulk(rows)
	table.Render()

	s.printf("%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func joinAutomata(names []m.AutomatonName) string {
	if len(names) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, string(name))
	}

	return strings.Join(parts, ", ")
}

func sortedAutomata(table m.InitialLocationTable) []m.AutomatonName {
	names := make([]m.AutomatonName, 0, len(table))
	for name := range table {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

func formatVerdict(verdict m.Verdict) string {
	switch verdict {
	case m.VerdictAbstraction:
		return "abstraction detected"
	case m.VerdictCounterExample:
		return "counter-example detected"
	default:
		return "no verdict"
	}
}
