package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/canvasite/canvasite-terminal/pkg/content"
	"github.com/canvasite/canvasite-terminal/pkg/session"
)

// TemplatesModel is the templates tab. Applying a template replaces the
// whole document, so a confirmation guards it when unsaved changes exist.
type TemplatesModel struct {
	sess       *session.Session
	cursor     int
	confirming bool
	width      int
	height     int
}

func NewTemplatesModel(sess *session.Session) *TemplatesModel {
	return &TemplatesModel{sess: sess}
}

func (m *TemplatesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *TemplatesModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.confirming {
		switch key.String() {
		case "y", "Y", "enter":
			m.confirming = false
			return m.apply()
		case "n", "N", "esc":
			m.confirming = false
			return nil
		}
		return nil
	}

	switch key.String() {
	case "up", "k":
		m.cursor = clamp(m.cursor-1, 0, len(content.Templates())-1)
	case "down", "j":
		m.cursor = clamp(m.cursor+1, 0, len(content.Templates())-1)
	case "enter":
		// Replacing a non-empty canvas loses work; ask first.
		if len(m.sess.Document().Sections) > 0 {
			m.confirming = true
			return nil
		}
		return m.apply()
	}
	return nil
}

func (m *TemplatesModel) apply() tea.Cmd {
	tmpl := content.Templates()[m.cursor]
	m.sess.ApplyTemplate(tmpl)
	m.sess.SetActiveTab(session.TabEditor)
	return status("%s template applied!", tmpl.Name)
}

func (m *TemplatesModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose a Template") + "\n")
	b.WriteString(dimStyle.Render("Select a template to get started quickly with a pre-designed website layout.") + "\n\n")

	for i, t := range content.Templates() {
		marker := "  "
		nameStyle := lipgloss.NewStyle().Bold(true)
		if i == m.cursor {
			marker = "> "
			nameStyle = nameStyle.Foreground(lipgloss.Color("205"))
		}
		b.WriteString(marker + nameStyle.Render(t.Name) + "\n")
		desc := wordwrap.String(t.Description, m.width-6)
		for _, line := range strings.Split(desc, "\n") {
			b.WriteString("    " + dimStyle.Render(line) + "\n")
		}
	}

	if m.confirming {
		warn := lipgloss.NewStyle().Foreground(lipgloss.Color("208")).
			Render("Applying a template replaces your current sections. Continue? (y/n)")
		b.WriteString("\n" + warn + "\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(b.String())
}
