package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	documentHeaderHeight = 2
	documentFooterHeight = 1
)

var (
	documentTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("6")).
				Bold(true).
				Padding(0, 1)
	documentHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// documentModel pages a model text in a viewport.
type documentModel struct {
	title    string
	content  string
	width    int
	height   int
	viewport viewport.Model
}

func newDocumentModel(title, content string) documentModel {
	vp := viewport.New(0, 0)
	vp.SetContent(content)

	return documentModel{
		title:    title,
		content:  content,
		viewport: vp,
	}
}

func (d *documentModel) resize(width, height int) {
	d.width = width
	d.height = height
	d.viewport.Width = width
	d.viewport.Height = max(height-documentHeaderHeight-documentFooterHeight, 1)
}

// needsPaging reports whether the content is taller than the known terminal.
// With no terminal size the document is printed as is.
func (d documentModel) needsPaging() bool {
	if d.height <= 0 {
		return false
	}

	return strings.Count(d.content, "\n")+1 > d.height-documentHeaderHeight-documentFooterHeight
}

func (d documentModel) Init() tea.Cmd {
	return nil
}

func (d documentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return d, tea.Quit
		}
	case tea.WindowSizeMsg:
		d.resize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd

	d.viewport, cmd = d.viewport.Update(msg)

	return d, cmd
}

func (d documentModel) View() string {
	header := documentTitleStyle.Render(d.title)
	footer := documentHelpStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", d.viewport.ScrollPercent()*100))

	return header + "\n\n" + d.viewport.View() + "\n" + footer
}

func (d documentModel) staticView() string {
	return documentTitleStyle.Render(d.title) + "\n" + d.content + "\n"
}
