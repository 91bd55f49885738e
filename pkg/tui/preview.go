package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/canvasite/canvasite-terminal/pkg/models"
	"github.com/canvasite/canvasite-terminal/pkg/render"
	"github.com/canvasite/canvasite-terminal/pkg/session"
)

// PreviewModel is the preview tab: the published look of the site, scheme
// colors applied, inside a scrollable viewport.
type PreviewModel struct {
	sess *session.Session
	vp   viewport.Model
}

func NewPreviewModel(sess *session.Session) *PreviewModel {
	return &PreviewModel{sess: sess, vp: viewport.New(0, 0)}
}

func (m *PreviewModel) SetSize(width, height int) {
	m.vp.Width = width
	m.vp.Height = height
	m.Refresh()
}

// Refresh re-projects the document. Called when the tab gains focus so
// edits made elsewhere show up.
func (m *PreviewModel) Refresh() {
	if m.vp.Width <= 0 {
		return
	}
	tree := render.Project(m.sess.Document(), m.sess.Styles(),
		models.Scheme(m.sess.Scheme()), render.ModePreview)
	renderer := render.NewTermRenderer(m.vp.Width-2, render.ModePreview)
	m.vp.SetContent(renderer.Render(tree))
}

func (m *PreviewModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return cmd
}

func (m *PreviewModel) View() string {
	return m.vp.View()
}
