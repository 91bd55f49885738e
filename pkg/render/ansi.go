package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// TermRenderer realizes a visual tree as styled terminal output.
type TermRenderer struct {
	Width int
	Mode  Mode
}

// NewTermRenderer returns a renderer for the given content width.
func NewTermRenderer(width int, mode Mode) *TermRenderer {
	if width < 20 {
		width = 20
	}
	return &TermRenderer{Width: width, Mode: mode}
}

// Render draws the whole tree.
func (r *TermRenderer) Render(page *Node) string {
	var blocks []string
	for _, c := range page.Children {
		switch c.Kind {
		case NodePlaceholder:
			blocks = append(blocks, r.renderPlaceholder(c))
		case NodeSection:
			blocks = append(blocks, r.RenderSection(c, false))
		}
	}
	return strings.Join(blocks, "\n")
}

func (r *TermRenderer) renderPlaceholder(n *Node) string {
	var lines []string
	for _, c := range n.Children {
		lines = append(lines, r.renderInline(c, r.Width-6))
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Width(r.Width - 2).
		Align(lipgloss.Center)
	return box.Render(strings.Join(lines, "\n"))
}

// RenderSection draws one section. selected adds the editor's highlight
// border so the canvas can show which section the styling panel targets.
func (r *TermRenderer) RenderSection(sec *Node, selected bool) string {
	inner := r.Width - 6

	var lines []string
	if r.Mode == ModeEditor {
		label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).
			Render(sec.SectionName)
		lines = append(lines, label)
	}
	for _, c := range sec.Children {
		lines = append(lines, r.renderBlock(c, inner))
	}

	content := strings.Join(lines, "\n")

	style := lipgloss.NewStyle().Padding(0, 1).Width(r.Width - 2)
	if bg := sectionBackground(sec); bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	if fg := sectionForeground(sec); fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if align := sec.Props["text-align"]; align == "center" {
		style = style.Align(lipgloss.Center)
	}
	content = style.Render(content)

	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Width(r.Width)
	switch {
	case selected:
		border = border.BorderForeground(lipgloss.Color("205"))
	case r.Mode == ModeEditor:
		border = border.BorderForeground(lipgloss.Color("240"))
	default:
		border = border.BorderForeground(lipgloss.Color("236"))
	}
	return border.Render(content)
}

// sectionBackground prefers the per-section override over the mode
// decoration the projector attached.
func sectionBackground(sec *Node) string {
	if bg, ok := sec.Props["background-color"]; ok && bg != "transparent" {
		return bg
	}
	return sec.Background
}

func sectionForeground(sec *Node) string {
	if fg, ok := sec.Props["color"]; ok && fg != "#000000" {
		return fg
	}
	return sec.Foreground
}

func (r *TermRenderer) renderBlock(n *Node, width int) string {
	switch n.Kind {
	case NodeHeading, NodeParagraph, NodeNote:
		return r.renderInline(n, width)
	case NodeGrid:
		var cards []string
		for _, c := range n.Children {
			cards = append(cards, r.renderCard(c, width))
		}
		return strings.Join(cards, "\n")
	case NodeBadge:
		return r.renderBadge(n, width)
	case NodeImage:
		return r.renderImage(n, width)
	case NodeButton:
		return r.renderButton(n)
	case NodeField:
		return r.renderField(n, width)
	case NodeAction:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true).
			Render("↻ " + n.Text)
	default:
		return ""
	}
}

func (r *TermRenderer) renderInline(n *Node, width int) string {
	text := wordwrap.String(n.Text, width)
	style := lipgloss.NewStyle()
	if n.Bold {
		style = style.Bold(true)
	}
	if n.Italic {
		style = style.Italic(true)
	}
	if n.Foreground != "" {
		style = style.Foreground(lipgloss.Color(n.Foreground))
	}
	if n.Centered {
		style = style.Width(width).Align(lipgloss.Center)
	}
	return style.Render(text)
}

func (r *TermRenderer) renderCard(card *Node, width int) string {
	var lines []string
	for _, c := range card.Children {
		lines = append(lines, r.renderInline(c, width-4))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (r *TermRenderer) renderBadge(n *Node, width int) string {
	badge := lipgloss.NewStyle().
		Background(lipgloss.Color(n.Background)).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1).
		Bold(true).
		Render("(" + n.Text + ")")
	var value string
	for _, c := range n.Children {
		value = r.renderInline(c, width-lipgloss.Width(badge)-1)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, badge, " ", value)
}

func (r *TermRenderer) renderImage(n *Node, width int) string {
	// Terminals do not load remote images; show a framed reference.
	label := n.Text
	if label == "" {
		label = "image"
	}
	body := fmt.Sprintf("🖼  %s\n%s", label, wordwrap.String(n.Source, width-4))
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(body)
}

func (r *TermRenderer) renderButton(n *Node) string {
	style := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	if n.Background != "" {
		style = style.Background(lipgloss.Color(n.Background))
	} else {
		style = style.Background(lipgloss.Color("240"))
	}
	if n.Foreground != "" {
		style = style.Foreground(lipgloss.Color(n.Foreground))
	} else {
		style = style.Foreground(lipgloss.Color("#ffffff"))
	}
	return style.Render("[ " + n.Text + " ]")
}

func (r *TermRenderer) renderField(n *Node, width int) string {
	label := n.Text
	if n.Required {
		label += " *"
	}
	box := "[__________________]"
	if n.Widget == "textarea" {
		box = "[__________________\n __________________]"
	}
	return fmt.Sprintf("%s\n%s", lipgloss.NewStyle().Bold(true).Render(label), box)
}
