package render

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// ExportHTML realizes a preview-mode tree as a standalone HTML page. This
// is what publishing and the export command write out.
func ExportHTML(title string, page *Node) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("</head>\n<body style=\"margin:0;font-family:Inter,sans-serif\">\n")

	for _, c := range page.Children {
		switch c.Kind {
		case NodePlaceholder:
			b.WriteString("<main style=\"padding:4rem;text-align:center\">\n")
			writeHTMLChildren(&b, c)
			b.WriteString("</main>\n")
		case NodeSection:
			writeHTMLSection(&b, c)
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeHTMLSection(b *strings.Builder, sec *Node) {
	style := inlineStyle(sec.Props)
	if sec.Background != "" {
		style += fmt.Sprintf(";background-color:%s", sec.Background)
	}
	if sec.Foreground != "" {
		style += fmt.Sprintf(";color:%s", sec.Foreground)
	}
	fmt.Fprintf(b, "<section id=%q style=%q>\n", sec.SectionID, style)
	writeHTMLChildren(b, sec)
	b.WriteString("</section>\n")
}

func writeHTMLChildren(b *strings.Builder, n *Node) {
	for _, c := range n.Children {
		writeHTMLNode(b, c)
	}
}

func writeHTMLNode(b *strings.Builder, n *Node) {
	switch n.Kind {
	case NodeHeading:
		fmt.Fprintf(b, "<h2 style=%q>%s</h2>\n", decorStyle(n), html.EscapeString(n.Text))
	case NodeParagraph:
		fmt.Fprintf(b, "<p style=%q>%s</p>\n", decorStyle(n), html.EscapeString(n.Text))
	case NodeNote:
		fmt.Fprintf(b, "<p style=\"font-style:italic;font-size:0.8em\">%s</p>\n", html.EscapeString(n.Text))
	case NodeGrid:
		b.WriteString("<div style=\"display:grid;grid-template-columns:repeat(auto-fit,minmax(200px,1fr));gap:1rem\">\n")
		writeHTMLChildren(b, n)
		b.WriteString("</div>\n")
	case NodeCard:
		b.WriteString("<div style=\"border:1px solid #e2e8f0;border-radius:8px;padding:1rem\">\n")
		writeHTMLChildren(b, n)
		b.WriteString("</div>\n")
	case NodeBadge:
		fmt.Fprintf(b, "<div style=\"text-align:center\"><span style=\"display:inline-block;border-radius:50%%;padding:1rem;background-color:%s;color:#fff\">%s</span>\n",
			n.Background, html.EscapeString(n.Text))
		writeHTMLChildren(b, n)
		b.WriteString("</div>\n")
	case NodeImage:
		fmt.Fprintf(b, "<img src=%q alt=%q style=\"max-width:100%%;border-radius:8px\">\n",
			n.Source, n.Text)
	case NodeButton:
		style := "padding:0.75rem 1.5rem;border:none;border-radius:8px;font-weight:500"
		if n.Background != "" {
			style += fmt.Sprintf(";background-color:%s;color:#fff", n.Background)
		}
		wrap := ""
		if n.Centered {
			wrap = "text-align:center"
		}
		fmt.Fprintf(b, "<div style=%q><button style=%q>%s</button></div>\n",
			wrap, style, html.EscapeString(n.Text))
	case NodeField:
		label := html.EscapeString(n.Text)
		required := ""
		if n.Required {
			required = " required"
			label += " <span style=\"color:#ef4444\">*</span>"
		}
		placeholder := html.EscapeString(fmt.Sprintf("Enter %s", strings.ToLower(n.Text)))
		fmt.Fprintf(b, "<div style=\"display:flex;flex-direction:column;margin-bottom:1rem\"><label>%s</label>\n", label)
		if n.Widget == "textarea" {
			fmt.Fprintf(b, "<textarea placeholder=%q%s></textarea>\n", placeholder, required)
		} else {
			fmt.Fprintf(b, "<input type=%q placeholder=%q%s>\n", n.Widget, placeholder, required)
		}
		b.WriteString("</div>\n")
	case NodeAction:
		// Editor-only affordance, never exported.
	}
}

func decorStyle(n *Node) string {
	var parts []string
	if n.Foreground != "" {
		parts = append(parts, "color:"+n.Foreground)
	}
	if n.Centered {
		parts = append(parts, "text-align:center")
	}
	if n.Italic {
		parts = append(parts, "font-style:italic")
	}
	return strings.Join(parts, ";")
}

func inlineStyle(props map[string]string) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var parts []string
	for _, k := range keys {
		parts = append(parts, k+":"+props[k])
	}
	return strings.Join(parts, ";")
}
