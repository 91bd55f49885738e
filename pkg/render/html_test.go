package render

import (
	"strings"
	"testing"

	"github.com/canvasite/canvasite-terminal/pkg/models"
	"github.com/canvasite/canvasite-terminal/pkg/styles"
)

func TestExportHTMLFullPage(t *testing.T) {
	doc := &models.Document{Name: "Acme & Co", Sections: []models.Section{
		section("header-1", models.KindHeader, models.Content{Title: "Hello", Subtitle: "World"}),
		section("button-1", models.KindButton, models.Content{Label: "Go"}),
		section("form-1", models.KindForm, models.Content{
			Title:  "Contact Form",
			Fields: []models.FormField{{Type: "email", Label: "Email", Required: true}},
		}),
	}}
	store := styles.NewStore(nil)
	tree := Project(doc, store, testScheme(), ModePreview)

	html := ExportHTML(doc.Name, tree)

	wants := []string{
		"<!DOCTYPE html>",
		"<title>Acme &amp; Co</title>",
		`<section id="header-1"`,
		"background-color:" + testScheme().Primary,
		"<h2",
		">Hello</h2>",
		"<button",
		">Go</button>",
		`<input type="email"`,
		`placeholder="Enter email"`,
		">Submit</button>",
		"</html>",
	}
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestExportHTMLIncludesOverrideStyles(t *testing.T) {
	store := styles.NewStore(nil)
	store.Set("text-1", models.FieldBackgroundColor, "#10b981")
	store.Set("text-1", models.FieldBorderWidth, "2px")

	doc := &models.Document{Name: "T", Sections: []models.Section{
		section("text-1", models.KindText, models.Content{Body: "hi"}),
	}}
	tree := Project(doc, store, testScheme(), ModePreview)
	html := ExportHTML(doc.Name, tree)

	for _, want := range []string{
		"background-color:#10b981",
		"border-style:solid",
		"border-width:2px",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestExportHTMLEscapesContent(t *testing.T) {
	doc := &models.Document{Name: "T", Sections: []models.Section{
		section("text-1", models.KindText, models.Content{Body: "<script>alert(1)</script>"}),
	}}
	tree := Project(doc, styles.NewStore(nil), testScheme(), ModePreview)
	html := ExportHTML(doc.Name, tree)

	if strings.Contains(html, "<script>") {
		t.Error("content not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("escaped content missing")
	}
}

func TestTermRendererShowsContent(t *testing.T) {
	doc := &models.Document{Name: "T", Sections: []models.Section{
		section("header-1", models.KindHeader, models.Content{Title: "Big Title", Subtitle: "Sub"}),
		section("services-1", models.KindServices, models.Content{
			Title: "Our Services",
			Items: []models.ServiceItem{{Title: "A", Description: "desc"}},
		}),
	}}
	tree := Project(doc, styles.NewStore(nil), testScheme(), ModeEditor)

	out := NewTermRenderer(80, ModeEditor).Render(tree)
	for _, want := range []string{"Big Title", "Sub", "Our Services", "desc"} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q", want)
		}
	}
}

func TestTermRendererEmptyDocument(t *testing.T) {
	tree := Project(models.NewDocument(), styles.NewStore(nil), testScheme(), ModePreview)
	out := NewTermRenderer(60, ModePreview).Render(tree)
	if !strings.Contains(out, "No content to preview") {
		t.Error("placeholder missing from terminal output")
	}
}
