// Package builder implements the document mutations behind the canvas:
// appending, removing, renaming, and template application. Every mutation
// returns a fresh document and leaves its input untouched, so the session
// can swap documents atomically and callers never observe partial state.
package builder

import (
	"fmt"
	"time"

	"github.com/canvasite/canvasite-terminal/pkg/content"
	"github.com/canvasite/canvasite-terminal/pkg/models"
)

// Clock supplies timestamps for section ids. Tests inject a fixed clock.
type Clock func() time.Time

// SectionID builds the canonical "{kind}-{millis}" id, appending a
// disambiguation suffix when the id already exists in the document. Two
// drops inside the same millisecond must still produce distinct ids.
func SectionID(doc *models.Document, kind models.SectionKind, now Clock) string {
	base := fmt.Sprintf("%s-%d", kind, now().UnixMilli())
	id := base
	for n := 1; doc != nil && doc.HasSection(id); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

// AppendSection creates a section of the given kind with the supplied
// content and appends it to the end of the document.
func AppendSection(doc *models.Document, kind models.SectionKind, c models.Content, now Clock) (*models.Document, models.Section) {
	item, ok := content.PaletteItemFor(kind)
	if !ok {
		// Unknown kinds still get a section; they render as an empty
		// container rather than failing the drop.
		item = models.PaletteItem{Kind: kind, Name: string(kind), Category: models.CategoryElement}
	}

	section := models.Section{
		ID:       SectionID(doc, kind, now),
		Kind:     kind,
		Name:     item.Name,
		Icon:     item.Icon,
		Category: item.Category,
		Content:  c,
	}

	out := doc.Clone()
	out.Sections = append(out.Sections, section)
	return out, section
}

// RemoveSection removes the section with the given id. Removing an absent
// id is a benign no-op: the returned document equals the input.
func RemoveSection(doc *models.Document, id string) (*models.Document, bool) {
	if !doc.HasSection(id) {
		return doc.Clone(), false
	}
	out := doc.Clone()
	sections := out.Sections[:0]
	for _, s := range out.Sections {
		if s.ID != id {
			sections = append(sections, s)
		}
	}
	out.Sections = sections
	return out, true
}

// RenameSite replaces the document name. Empty or whitespace-only names are
// accepted here; the publish gate is where they are rejected.
func RenameSite(doc *models.Document, name string) *models.Document {
	out := doc.Clone()
	out.Name = name
	return out
}

// ApplyTemplate replaces the whole document with the template's canonical
// four sections (header, about, services, contact) under fresh ids and
// names the site "My {template} Website".
//
// Style overrides are deliberately not touched here: seeded ids are always
// fresh, so a stale override can never attach to a new section, and the
// session owns the override store.
func ApplyTemplate(doc *models.Document, tmpl models.Template, now Clock) *models.Document {
	name := fmt.Sprintf("My %s Website", tmpl.Name)
	out := &models.Document{Name: name}

	for _, kind := range []models.SectionKind{
		models.KindHeader, models.KindAbout, models.KindServices, models.KindContact,
	} {
		item, _ := content.PaletteItemFor(kind)
		out.Sections = append(out.Sections, models.Section{
			ID:       SectionID(out, kind, now),
			Kind:     kind,
			Name:     item.Name,
			Icon:     item.Icon,
			Category: item.Category,
			Content:  content.TemplateContentFor(kind, name),
		})
	}
	return out
}
