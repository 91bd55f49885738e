// Package render projects a document into a visual tree and realizes that
// tree for the terminal and for HTML export. Projection is pure: the same
// document, styles, scheme, and mode always produce the same tree.
package render

import (
	"fmt"

	"github.com/canvasite/canvasite-terminal/pkg/models"
	"github.com/canvasite/canvasite-terminal/pkg/styles"
)

// Mode selects the editor or preview rendering variant. The two expose the
// same data and differ only in layout and decoration.
type Mode int

const (
	ModeEditor Mode = iota
	ModePreview
)

// NodeKind discriminates visual tree nodes.
type NodeKind string

const (
	NodePage        NodeKind = "page"
	NodePlaceholder NodeKind = "placeholder"
	NodeSection     NodeKind = "section"
	NodeHeading     NodeKind = "heading"
	NodeParagraph   NodeKind = "paragraph"
	NodeGrid        NodeKind = "grid"
	NodeCard        NodeKind = "card"
	NodeBadge       NodeKind = "badge"
	NodeImage       NodeKind = "image"
	NodeButton      NodeKind = "button"
	NodeField       NodeKind = "field"
	NodeNote        NodeKind = "note"
	NodeAction      NodeKind = "action"
)

// Node is one element of the visual tree. Realizers (terminal, HTML) walk
// it without consulting the document again.
type Node struct {
	Kind     NodeKind
	Text     string
	Children []*Node

	// Decoration. Empty values mean "inherit".
	Background string
	Foreground string
	Bold       bool
	Italic     bool
	Centered   bool

	// Set on NodeSection roots.
	SectionID   string
	SectionKind models.SectionKind
	SectionName string
	Icon        string
	Props       styles.Props

	// Set on NodeImage.
	Source string

	// Set on NodeField.
	Widget   string
	Required bool
}

func (n *Node) child(c *Node) *Node {
	n.Children = append(n.Children, c)
	return n
}

func heading(text string) *Node   { return &Node{Kind: NodeHeading, Text: text, Bold: true} }
func paragraph(text string) *Node { return &Node{Kind: NodeParagraph, Text: text} }

// Project builds the visual tree for a document. Sections dispatch on
// their Kind field, falling back to the id prefix for documents that
// predate the explicit discriminant; a section with an unknown kind
// becomes an empty container rather than an error.
func Project(doc *models.Document, st *styles.Store, scheme models.ColorScheme, mode Mode) *Node {
	page := &Node{Kind: NodePage}

	if len(doc.Sections) == 0 {
		return page.child(emptyPlaceholder(mode))
	}

	for i := range doc.Sections {
		page.child(projectSection(&doc.Sections[i], st, scheme, mode))
	}
	return page
}

func emptyPlaceholder(mode Mode) *Node {
	p := &Node{Kind: NodePlaceholder}
	if mode == ModeEditor {
		p.child(heading("Your canvas is empty"))
		p.child(paragraph("Drag and drop elements from the left panel to start building your website, or choose a template to get started quickly."))
	} else {
		p.child(heading("No content to preview"))
		p.child(paragraph("Add some elements to your website first."))
	}
	return p
}

func projectSection(s *models.Section, st *styles.Store, scheme models.ColorScheme, mode Mode) *Node {
	kind := s.Kind
	if kind == "" {
		kind, _ = models.KindFromID(s.ID)
	}

	sec := &Node{
		Kind:        NodeSection,
		SectionID:   s.ID,
		SectionKind: kind,
		SectionName: s.Name,
		Icon:        s.Icon,
		Props:       st.Projection(s.ID),
	}

	c := &s.Content
	switch kind {
	case models.KindHeader:
		projectHeader(sec, c, scheme, mode)
	case models.KindAbout:
		projectAbout(sec, c, scheme, mode)
	case models.KindServices:
		projectServices(sec, c, scheme, mode)
	case models.KindContact:
		projectContact(sec, c, scheme, mode)
	case models.KindText:
		sec.child(paragraph(c.Body))
	case models.KindImage:
		projectImage(sec, c, mode)
	case models.KindButton:
		projectButton(sec, c, scheme, mode)
	case models.KindForm:
		projectForm(sec, c, scheme, mode)
	default:
		// Unknown kinds render as an empty container.
	}
	return sec
}

func projectHeader(sec *Node, c *models.Content, scheme models.ColorScheme, mode Mode) {
	if mode == ModePreview {
		sec.Background = scheme.Primary
		sec.Foreground = "#ffffff"
	}
	title := heading(c.Title)
	title.Centered = true
	sub := paragraph(c.Subtitle)
	sub.Centered = true
	sec.child(title).child(sub)
}

func projectAbout(sec *Node, c *models.Content, scheme models.ColorScheme, mode Mode) {
	title := heading(c.Title)
	if mode == ModePreview {
		title.Foreground = scheme.Primary
		title.Centered = true
	}
	sec.child(title).child(paragraph(c.Body))
}

func projectServices(sec *Node, c *models.Content, scheme models.ColorScheme, mode Mode) {
	title := heading(c.Title)
	if mode == ModePreview {
		title.Foreground = scheme.Primary
		title.Centered = true
	}
	sec.child(title)

	grid := &Node{Kind: NodeGrid}
	for _, item := range c.Items {
		card := &Node{Kind: NodeCard}
		cardTitle := heading(item.Title)
		if mode == ModePreview {
			cardTitle.Foreground = scheme.Accent
		}
		card.child(cardTitle).child(paragraph(item.Description))
		grid.child(card)
	}
	sec.child(grid)
}

func projectContact(sec *Node, c *models.Content, scheme models.ColorScheme, mode Mode) {
	title := heading(c.Title)
	if mode == ModePreview {
		title.Foreground = scheme.Primary
		title.Centered = true
	}
	sec.child(title)

	if mode == ModeEditor {
		sec.child(paragraph(fmt.Sprintf("Email: %s", c.Email)))
		sec.child(paragraph(fmt.Sprintf("Phone: %s", c.Phone)))
		return
	}

	email := &Node{Kind: NodeBadge, Text: "Email", Icon: "Mail", Background: scheme.Secondary}
	email.child(paragraph(c.Email))
	phone := &Node{Kind: NodeBadge, Text: "Phone", Icon: "Phone", Background: scheme.Secondary}
	phone.child(paragraph(c.Phone))
	sec.child(email).child(phone)
}

func projectImage(sec *Node, c *models.Content, mode Mode) {
	sec.child(&Node{Kind: NodeImage, Source: c.Src, Text: c.Alt})

	if c.FromMediaLibrary {
		note := &Node{Kind: NodeNote, Italic: true}
		if mode == ModeEditor {
			note.Text = "From Media Library"
		} else {
			note.Text = "Image from Media Library"
		}
		sec.child(note)
	}
	if mode == ModeEditor {
		sec.child(&Node{Kind: NodeAction, Text: "Replace from Media Library"})
	}
}

func projectButton(sec *Node, c *models.Content, scheme models.ColorScheme, mode Mode) {
	btn := &Node{Kind: NodeButton, Text: c.Label}
	if mode == ModePreview {
		btn.Background = scheme.Primary
		btn.Foreground = "#ffffff"
		btn.Centered = true
	}
	sec.child(btn)
}

func projectForm(sec *Node, c *models.Content, scheme models.ColorScheme, mode Mode) {
	title := heading(c.Title)
	if mode == ModePreview {
		title.Foreground = scheme.Primary
		title.Centered = true
	}
	sec.child(title)

	for _, f := range c.Fields {
		// Widget keeps the declared type; realizers treat "textarea"
		// specially and render everything else as a typed input.
		sec.child(&Node{
			Kind:     NodeField,
			Text:     f.Label,
			Widget:   f.Type,
			Required: f.Required,
		})
	}

	submit := &Node{Kind: NodeButton, Text: "Submit"}
	if mode == ModePreview {
		submit.Background = scheme.Primary
		submit.Foreground = "#ffffff"
	}
	sec.child(submit)
}

// FindText reports whether any node in the tree carries the exact text.
func FindText(n *Node, text string) bool {
	if n == nil {
		return false
	}
	if n.Text == text {
		return true
	}
	for _, c := range n.Children {
		if FindText(c, text) {
			return true
		}
	}
	return false
}
