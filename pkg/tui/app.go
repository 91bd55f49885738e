package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/canvasite/canvasite-terminal/pkg/files"
	"github.com/canvasite/canvasite-terminal/pkg/media"
	"github.com/canvasite/canvasite-terminal/pkg/models"
	"github.com/canvasite/canvasite-terminal/pkg/publish"
	"github.com/canvasite/canvasite-terminal/pkg/render"
	"github.com/canvasite/canvasite-terminal/pkg/session"
)

// Messages for communication between views
type StatusMsg string

type publishDoneMsg struct {
	url string
	err error
}

type clearStatusMsg struct{}

// App is the top-level bubbletea model: one session, one view per tab.
type App struct {
	sess      *session.Session
	transport publish.Transport

	editor    *EditorModel
	preview   *PreviewModel
	templates *TemplatesModel
	settings  *SettingsModel
	styling   *StylingModel

	spin      spinner.Model
	statusMsg string
	width     int
	height    int
}

// NewApp builds the TUI around a fresh session with the configured scheme
// and the sample media library.
func NewApp() *App {
	settings, err := files.ReadSettings()
	if err != nil {
		settings = nil
	}

	library := media.SampleLibrary()
	transport := publish.DefaultSimulator()
	cfg := session.Config{
		Transport: transport,
		Resolver:  library,
	}
	showPalette := true
	if settings != nil {
		cfg.Scheme = settings.UI.ColorScheme
		showPalette = settings.UI.ShowPalette
	}
	sess := session.New(cfg)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &App{
		sess:      sess,
		transport: transport,
		editor:    NewEditorModel(sess, library, showPalette),
		preview:   NewPreviewModel(sess),
		templates: NewTemplatesModel(sess),
		settings:  NewSettingsModel(sess),
		styling:   NewStylingModel(sess),
		spin:      sp,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		contentHeight := a.height - headerHeight(a.width) - 3
		a.editor.SetSize(a.width, contentHeight)
		a.preview.SetSize(a.width, contentHeight)
		a.templates.SetSize(a.width, contentHeight)
		a.settings.SetSize(a.width, contentHeight)
		a.styling.SetSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if !a.editingText() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.sess.SetActiveTab(session.TabEditor)
				return a, nil
			case "2":
				a.sess.SetActiveTab(session.TabPreview)
				a.preview.Refresh()
				return a, nil
			case "3":
				a.sess.SetActiveTab(session.TabTemplates)
				return a, nil
			case "4":
				a.sess.SetActiveTab(session.TabSettings)
				return a, nil
			case "5":
				a.sess.SetActiveTab(session.TabStyles)
				return a, nil
			case "s":
				return a, a.save()
			case "P":
				return a, a.startPublish()
			}
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, clearStatusAfter(4 * time.Second)

	case clearStatusMsg:
		a.statusMsg = ""
		return a, nil

	case publishDoneMsg:
		if msg.err != nil {
			a.sess.FailPublish()
			return a, status("Publishing failed: %v. Please try again.", msg.err)
		}
		a.sess.CompletePublish()
		a.writeLocalCopy()
		return a, status("Website published successfully! Visit: %s", msg.url)

	case spinner.TickMsg:
		if a.sess.IsPublishing() {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Route everything else to the active tab's view.
	var cmd tea.Cmd
	switch a.sess.ActiveTab() {
	case session.TabEditor:
		cmd = a.editor.Update(msg)
	case session.TabPreview:
		cmd = a.preview.Update(msg)
	case session.TabTemplates:
		cmd = a.templates.Update(msg)
	case session.TabSettings:
		cmd = a.settings.Update(msg)
	case session.TabStyles:
		cmd = a.styling.Update(msg)
	}
	return a, cmd
}

// editingText reports whether a text input currently owns the keyboard, so
// global single-letter bindings stay out of the way.
func (a *App) editingText() bool {
	return a.sess.ActiveTab() == session.TabSettings && a.settings.editingName
}

func (a *App) save() tea.Cmd {
	if !a.sess.Save() {
		return status("Nothing to save")
	}
	record := &files.SiteRecord{
		Scheme: a.sess.Scheme(),
		Site:   *a.sess.Document(),
	}
	if err := files.WriteSite(record); err != nil {
		// Keep the flag honest: the site is still unsaved.
		a.sess.MarkDirty()
		return status("Save failed: %v", err)
	}
	return status("Changes saved successfully!")
}

func (a *App) startPublish() tea.Cmd {
	if err := a.sess.BeginPublish(); err != nil {
		return status("%v", err)
	}
	doc := a.sess.Document().Clone()
	transport := a.transport
	return tea.Batch(
		a.spin.Tick,
		status("Publishing your website..."),
		func() tea.Msg {
			url, err := transport.Publish(context.Background(), doc)
			return publishDoneMsg{url: url, err: err}
		},
	)
}

// writeLocalCopy records the page that just went live under published/.
// The publish itself already succeeded, so a write failure is not surfaced.
func (a *App) writeLocalCopy() {
	doc := a.sess.Document()
	tree := render.Project(doc, a.sess.Styles(), models.Scheme(a.sess.Scheme()), render.ModePreview)
	_, _ = files.WriteExport(doc.Name, render.ExportHTML(doc.Name, tree))
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.sess.ActiveTab() {
	case session.TabEditor:
		content = a.editor.View()
	case session.TabPreview:
		content = a.preview.View()
	case session.TabTemplates:
		content = a.templates.View()
	case session.TabSettings:
		content = a.settings.View()
	case session.TabStyles:
		content = a.styling.View()
	default:
		content = "Unknown view"
	}

	header := renderHeader(a.width, a.sess, a.publishingIndicator())
	out := lipgloss.JoinVertical(lipgloss.Top, header, content)

	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		out = lipgloss.JoinVertical(lipgloss.Top, out, statusStyle.Render(a.statusMsg))
	}

	return out
}

func (a *App) publishingIndicator() string {
	if !a.sess.IsPublishing() {
		return ""
	}
	return a.spin.View() + " Publishing..."
}

func status(format string, args ...interface{}) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(statusf(format, args...))
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
