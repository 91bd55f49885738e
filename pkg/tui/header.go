package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/canvasite/canvasite-terminal/pkg/session"
)

func statusf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

// headerHeight reports how many rows renderHeader occupies so the tab
// views can size themselves.
func headerHeight(width int) int {
	return 3
}

// renderHeader draws the site name, section count, dirty marker, and the
// tab bar.
func renderHeader(width int, sess *session.Session, indicator string) string {
	doc := sess.Document()

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).
		Render(doc.Name)

	meta := fmt.Sprintf("%d sections", len(doc.Sections))
	if sess.IsDirty() {
		meta += " • Unsaved changes"
	}
	metaStyled := lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Render(meta)

	left := title + "  " + metaStyled
	right := indicator
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	topLine := left + lipgloss.NewStyle().Width(gap).Render("") + right

	var tabs string
	for i, t := range session.Tabs() {
		label := fmt.Sprintf(" %d:%s ", i+1, t)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		if t == sess.ActiveTab() {
			style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Underline(true)
		}
		tabs += style.Render(label)
	}

	keys := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).
		Render("s save • P publish • q quit")

	pad := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).Width(width)
	return pad.Render(topLine) + "\n" + pad.Render(tabs) + "\n" + pad.Render(keys)
}
