package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/canvasite/canvasite-terminal/pkg/models"
	"github.com/canvasite/canvasite-terminal/pkg/session"
)

// SettingsModel is the settings tab: site name and color scheme.
type SettingsModel struct {
	sess        *session.Session
	nameInput   textinput.Model
	editingName bool
	schemeIdx   int
	width       int
	height      int
}

func NewSettingsModel(sess *session.Session) *SettingsModel {
	ti := textinput.New()
	ti.Placeholder = "Website name"
	ti.CharLimit = 120
	ti.Width = 40

	m := &SettingsModel{sess: sess, nameInput: ti}
	for i, name := range models.SchemeNames() {
		if name == sess.Scheme() {
			m.schemeIdx = i
		}
	}
	return m
}

func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *SettingsModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.editingName {
		switch key.String() {
		case "enter":
			m.editingName = false
			m.nameInput.Blur()
			m.sess.RenameSite(m.nameInput.Value())
			return status("Website renamed")
		case "esc":
			m.editingName = false
			m.nameInput.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return cmd
	}

	switch key.String() {
	case "n", "enter":
		m.editingName = true
		m.nameInput.SetValue(m.sess.Document().Name)
		m.nameInput.CursorEnd()
		return m.nameInput.Focus()
	case "left", "h":
		m.schemeIdx = clamp(m.schemeIdx-1, 0, len(models.SchemeNames())-1)
		return m.applyScheme()
	case "right", "l":
		m.schemeIdx = clamp(m.schemeIdx+1, 0, len(models.SchemeNames())-1)
		return m.applyScheme()
	}
	return nil
}

func (m *SettingsModel) applyScheme() tea.Cmd {
	name := models.SchemeNames()[m.schemeIdx]
	if name == m.sess.Scheme() {
		return nil
	}
	m.sess.ApplyScheme(name)
	label := strings.ToUpper(string(name[0])) + string(name[1:])
	return status("%s color scheme applied!", label)
}

func (m *SettingsModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Website Settings") + "\n\n")

	b.WriteString(titleStyle.Render("Name") + "\n")
	if m.editingName {
		b.WriteString(m.nameInput.View() + "\n")
		b.WriteString(dimStyle.Render("enter apply • esc cancel") + "\n\n")
	} else {
		b.WriteString(m.sess.Document().Name + "\n")
		b.WriteString(dimStyle.Render("n edit name") + "\n\n")
	}

	b.WriteString(titleStyle.Render("Color Scheme") + "\n")
	for i, name := range models.SchemeNames() {
		scheme := models.Scheme(name)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(scheme.Primary)).Render("  ") +
			lipgloss.NewStyle().Background(lipgloss.Color(scheme.Secondary)).Render("  ") +
			lipgloss.NewStyle().Background(lipgloss.Color(scheme.Accent)).Render("  ")
		marker := "  "
		label := string(name)
		if i == m.schemeIdx {
			marker = "> "
			label = lipgloss.NewStyle().Bold(true).Render(label)
		}
		b.WriteString(marker + swatch + " " + label + "\n")
	}
	b.WriteString(dimStyle.Render("←/→ switch scheme") + "\n")

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(b.String())
}
