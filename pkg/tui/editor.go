package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/canvasite/canvasite-terminal/pkg/content"
	"github.com/canvasite/canvasite-terminal/pkg/media"
	"github.com/canvasite/canvasite-terminal/pkg/models"
	"github.com/canvasite/canvasite-terminal/pkg/render"
	"github.com/canvasite/canvasite-terminal/pkg/session"
)

const paletteWidth = 26

// EditorModel is the editor tab: the element palette on the left, the
// canvas on the right. The palette-to-canvas drag is modeled as pick up
// (enter), move, drop (enter) / abort (esc).
type EditorModel struct {
	sess    *session.Session
	library *media.Library

	showPalette   bool
	paletteFocus  bool
	paletteCursor int
	canvasCursor  int
	dragged       *session.DragPayload

	canvas viewport.Model
	width  int
	height int
}

func NewEditorModel(sess *session.Session, library *media.Library, showPalette bool) *EditorModel {
	return &EditorModel{
		sess:         sess,
		library:      library,
		showPalette:  showPalette,
		paletteFocus: showPalette,
		canvas:       viewport.New(0, 0),
	}
}

func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.canvas.Width = width - 2
	if m.showPalette {
		m.canvas.Width = width - paletteWidth - 2
	}
	m.canvas.Height = height
	m.refreshCanvas()
}

func (m *EditorModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.canvas, cmd = m.canvas.Update(msg)
		return cmd
	}

	switch key.String() {
	case "tab":
		if m.showPalette {
			m.paletteFocus = !m.paletteFocus
		}
		return nil

	case "p":
		m.showPalette = !m.showPalette
		if !m.showPalette {
			m.paletteFocus = false
		}
		m.SetSize(m.width, m.height)
		return nil

	case "esc":
		if m.dragged != nil {
			m.dragged = nil
			m.sess.EndDrag()
			return status("Drag cancelled")
		}
		m.sess.ClearSelection()
		m.refreshCanvas()
		return nil

	case "up", "k":
		m.moveCursor(-1)
		return nil

	case "down", "j":
		m.moveCursor(1)
		return nil

	case "enter", " ":
		return m.activate()

	case "m":
		return m.insertFromLibrary()

	case "x", "backspace":
		return m.removeSelected()
	}

	var cmd tea.Cmd
	m.canvas, cmd = m.canvas.Update(msg)
	return cmd
}

func (m *EditorModel) moveCursor(delta int) {
	if m.paletteFocus {
		n := len(content.Palette())
		m.paletteCursor = clamp(m.paletteCursor+delta, 0, n-1)
		return
	}
	n := len(m.sess.Document().Sections)
	if n == 0 {
		return
	}
	m.canvasCursor = clamp(m.canvasCursor+delta, 0, n-1)
	m.syncSelection()
}

// activate is enter: on the palette it picks up or drops the dragged item;
// on the canvas it selects the hovered section.
func (m *EditorModel) activate() tea.Cmd {
	if m.paletteFocus {
		if m.dragged == nil {
			item := content.Palette()[m.paletteCursor]
			payload := session.PayloadFor(item)
			m.dragged = &payload
			m.sess.BeginDrag(payload)
			m.paletteFocus = false
			return status("Dragging %s, press enter on the canvas to drop", item.Name)
		}
		return nil
	}

	if m.dragged != nil {
		payload := *m.dragged
		m.dragged = nil
		section, err := m.sess.DropOnCanvas(payload)
		if err != nil {
			return status("Could not add section: %v", err)
		}
		m.canvasCursor = len(m.sess.Document().Sections) - 1
		m.syncSelection()
		m.refreshCanvas()
		return status("Added %s section to your website!", section.Name)
	}

	m.syncSelection()
	m.refreshCanvas()
	return nil
}

func (m *EditorModel) insertFromLibrary() tea.Cmd {
	asset, ok := m.library.First()
	if !ok {
		return status("The media library is empty")
	}
	if _, err := m.sess.InsertLibraryImage(asset.ID); err != nil {
		return status("%v", err)
	}
	m.canvasCursor = len(m.sess.Document().Sections) - 1
	m.refreshCanvas()
	return status("Image added from Media Library!")
}

func (m *EditorModel) removeSelected() tea.Cmd {
	sections := m.sess.Document().Sections
	if m.paletteFocus || len(sections) == 0 {
		return nil
	}
	// The document can shrink while another tab has focus (template apply,
	// for one), so the cursor may point past the end.
	m.canvasCursor = clamp(m.canvasCursor, 0, len(sections)-1)
	id := sections[m.canvasCursor].ID
	if !m.sess.RemoveSection(id) {
		return nil
	}
	if n := len(m.sess.Document().Sections); m.canvasCursor >= n && n > 0 {
		m.canvasCursor = n - 1
	}
	m.refreshCanvas()
	return status("Section removed from your website")
}

// syncSelection keeps the session's selected section in step with the
// canvas cursor.
func (m *EditorModel) syncSelection() {
	sections := m.sess.Document().Sections
	if len(sections) == 0 {
		m.sess.ClearSelection()
		return
	}
	m.canvasCursor = clamp(m.canvasCursor, 0, len(sections)-1)
	_ = m.sess.Select(sections[m.canvasCursor].ID)
}

func (m *EditorModel) refreshCanvas() {
	if m.canvas.Width <= 0 {
		return
	}
	tree := render.Project(m.sess.Document(), m.sess.Styles(),
		models.Scheme(m.sess.Scheme()), render.ModeEditor)

	renderer := render.NewTermRenderer(m.canvas.Width, render.ModeEditor)
	var blocks []string
	for i, node := range tree.Children {
		if node.Kind == render.NodePlaceholder {
			blocks = append(blocks, renderer.Render(tree))
			break
		}
		selected := !m.paletteFocus && i == m.canvasCursor && node.SectionID == m.sess.Selected()
		blocks = append(blocks, renderer.RenderSection(node, selected))
	}
	m.canvas.SetContent(strings.Join(blocks, "\n"))
}

func (m *EditorModel) View() string {
	m.refreshCanvas()
	if !m.showPalette {
		return m.canvas.View()
	}
	palette := m.renderPalette()
	divider := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(strings.Repeat("│\n", max(m.height-1, 1)) + "│")
	return lipgloss.JoinHorizontal(lipgloss.Top, palette, divider, m.canvas.View())
}

func (m *EditorModel) renderPalette() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("243"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("ELEMENTS") + "\n")

	lastCategory := models.Category("")
	for i, item := range content.Palette() {
		if item.Category != lastCategory {
			lastCategory = item.Category
			if i > 0 {
				b.WriteString("\n")
			}
		}
		line := "  " + item.Name
		style := lipgloss.NewStyle()
		switch {
		case m.dragged != nil && m.dragged.Kind == item.Kind:
			line = "◌ " + item.Name
			style = style.Foreground(lipgloss.Color("243")).Italic(true)
		case m.paletteFocus && i == m.paletteCursor:
			line = "> " + item.Name
			style = style.Bold(true).Foreground(lipgloss.Color("205"))
		}
		b.WriteString(style.Render(line) + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("MEDIA LIBRARY") + "\n")
	b.WriteString("  m: insert image\n")
	b.WriteString("  p: hide palette\n")

	return lipgloss.NewStyle().
		Width(paletteWidth).
		Height(m.height).
		Padding(0, 1).
		Render(b.String())
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
