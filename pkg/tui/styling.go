package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/canvasite/canvasite-terminal/pkg/models"
	"github.com/canvasite/canvasite-terminal/pkg/session"
)

// Color swatches offered for the color fields. The store accepts any hex
// value; the panel offers a curated set.
var colorChoices = []string{
	"transparent", "#000000", "#ffffff", "#ef4444", "#f97316", "#eab308",
	"#10b981", "#3b82f6", "#8b5cf6", "#e2e8f0",
}

type styleRow struct {
	label   string
	field   models.StyleField
	choices []string
}

func styleRows() []styleRow {
	return []styleRow{
		{"Background", models.FieldBackgroundColor, colorChoices},
		{"Text Color", models.FieldTextColor, colorChoices[1:]},
		{"Font Size", models.FieldFontSize, models.FontSizes},
		{"Font Weight", models.FieldFontWeight, models.FontWeights},
		{"Font Family", models.FieldFontFamily, models.FontFamilies},
		{"Text Align", models.FieldTextAlign, models.TextAligns},
		{"Padding", models.FieldPadding, models.SpacingSteps},
		{"Margin", models.FieldMargin, models.SpacingSteps},
		{"Border Width", models.FieldBorderWidth, models.BorderWidths},
		{"Border Color", models.FieldBorderColor, colorChoices[1:]},
		{"Border Radius", models.FieldBorderRadius, models.BorderRadii},
		{"Box Shadow", models.FieldBoxShadow, models.BoxShadows},
		{"Animation", models.FieldAnimation, models.Animations},
	}
}

// StylingModel is the styles tab: per-section style overrides for the
// section selected in the editor.
type StylingModel struct {
	sess       *session.Session
	cursor     int
	confirming bool
	width      int
	height     int
}

func NewStylingModel(sess *session.Session) *StylingModel {
	return &StylingModel{sess: sess}
}

func (m *StylingModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *StylingModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.confirming {
		switch key.String() {
		case "y", "Y", "enter":
			m.confirming = false
			m.sess.Styles().ResetAll()
			return status("All element styles reset to default")
		case "n", "N", "esc":
			m.confirming = false
		}
		return nil
	}

	selected := m.sess.Selected()

	switch key.String() {
	case "up", "k":
		m.cursor = clamp(m.cursor-1, 0, len(styleRows())-1)
	case "down", "j":
		m.cursor = clamp(m.cursor+1, 0, len(styleRows())-1)
	case "left", "h":
		return m.cycle(selected, -1)
	case "right", "l":
		return m.cycle(selected, 1)
	case "r":
		if selected == "" {
			return nil
		}
		m.sess.Styles().Reset(selected)
		return status("Element styles reset to default")
	case "R":
		m.confirming = true
	}
	return nil
}

func (m *StylingModel) cycle(selected string, delta int) tea.Cmd {
	if selected == "" {
		return nil
	}
	row := styleRows()[m.cursor]
	current := currentValue(m.sess, selected, row.field)

	idx := 0
	for i, v := range row.choices {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(row.choices)) % len(row.choices)

	if err := m.sess.Styles().Set(selected, row.field, row.choices[idx]); err != nil {
		return status("%v", err)
	}
	return status("Style updated successfully")
}

func currentValue(sess *session.Session, id string, field models.StyleField) string {
	st := sess.Styles().Resolve(id)
	switch field {
	case models.FieldBackgroundColor:
		return st.BackgroundColor
	case models.FieldTextColor:
		return st.TextColor
	case models.FieldFontSize:
		return st.FontSize
	case models.FieldFontWeight:
		return st.FontWeight
	case models.FieldFontFamily:
		return st.FontFamily
	case models.FieldTextAlign:
		return st.TextAlign
	case models.FieldPadding:
		return st.Padding
	case models.FieldMargin:
		return st.Margin
	case models.FieldBorderWidth:
		return st.BorderWidth
	case models.FieldBorderColor:
		return st.BorderColor
	case models.FieldBorderRadius:
		return st.BorderRadius
	case models.FieldBoxShadow:
		return st.BoxShadow
	case models.FieldAnimation:
		return st.Animation
	}
	return ""
}

func (m *StylingModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	selected := m.sess.Selected()
	if selected == "" {
		msg := titleStyle.Render("Select an element to style") + "\n" +
			dimStyle.Render("Go to the editor tab and select a section on the canvas to customize its appearance.")
		return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(msg)
	}

	section := m.sess.Document().FindSection(selected)
	name := selected
	if section != nil {
		name = section.Name
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Styling: "+name) + "\n\n")

	for i, row := range styleRows() {
		value := currentValue(m.sess, selected, row.field)
		marker := "  "
		labelStyle := lipgloss.NewStyle()
		if i == m.cursor {
			marker = "> "
			labelStyle = labelStyle.Bold(true).Foreground(lipgloss.Color("205"))
		}
		b.WriteString(marker + labelStyle.Render(padRight(row.label, 14)) + " ‹ " + value + " ›\n")
	}

	b.WriteString("\n" + dimStyle.Render("←/→ change value • r reset element • R reset all") + "\n")

	if m.confirming {
		warn := lipgloss.NewStyle().Foreground(lipgloss.Color("208")).
			Render("Reset all element styles? This action cannot be undone. (y/n)")
		b.WriteString("\n" + warn + "\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(b.String())
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
