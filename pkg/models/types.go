package models

// SectionKind identifies what a section renders as. It doubles as the id
// prefix for every section of that kind, so documents written by older
// builds that only carry prefixed ids can still be dispatched.
type SectionKind string

const (
	KindHeader   SectionKind = "header"
	KindAbout    SectionKind = "about"
	KindServices SectionKind = "services"
	KindContact  SectionKind = "contact"
	KindText     SectionKind = "text"
	KindImage    SectionKind = "image"
	KindButton   SectionKind = "button"
	KindForm     SectionKind = "form"
)

// Category groups palette items in the elements panel. The renderer never
// looks at it.
type Category string

const (
	CategoryStructure Category = "structure"
	CategoryElement   Category = "element"
)

// ServiceItem is one card in a services section.
type ServiceItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// FormField is one input in a form section.
type FormField struct {
	Type     string `yaml:"type"`
	Label    string `yaml:"label"`
	Required bool   `yaml:"required"`
}

// Content is the per-kind payload of a section. Only the fields belonging
// to the section's kind are ever set; the rest stay at their zero value
// and are omitted on disk.
type Content struct {
	Title    string `yaml:"title,omitempty"`
	Subtitle string `yaml:"subtitle,omitempty"`
	// Body holds the text for about and text sections.
	Body  string        `yaml:"content,omitempty"`
	Items []ServiceItem `yaml:"items,omitempty"`
	Email string        `yaml:"email,omitempty"`
	Phone string        `yaml:"phone,omitempty"`

	Src              string `yaml:"src,omitempty"`
	Alt              string `yaml:"alt,omitempty"`
	FromMediaLibrary bool   `yaml:"from_media_library,omitempty"`
	MediaID          string `yaml:"media_id,omitempty"`

	Label string `yaml:"label,omitempty"`
	URL   string `yaml:"url,omitempty"`

	Fields []FormField `yaml:"fields,omitempty"`
}

// Section is one block of the site, identified by a unique id of the form
// "{kind}-{timestamp}". Kind is the dispatch discriminant; the id is an
// opaque unique key whose prefix happens to match it.
type Section struct {
	ID       string      `yaml:"id"`
	Kind     SectionKind `yaml:"kind"`
	Name     string      `yaml:"name"`
	Icon     string      `yaml:"icon"`
	Category Category    `yaml:"category"`
	Content  Content     `yaml:"content"`
}

// Document is a site under construction: a name and an ordered list of
// sections. Order is render order.
type Document struct {
	Name     string    `yaml:"name"`
	Sections []Section `yaml:"sections"`
}

// NewDocument returns an empty site with the default name.
func NewDocument() *Document {
	return &Document{Name: "My New Website"}
}

// FindSection returns the section with the given id, or nil.
func (d *Document) FindSection(id string) *Section {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}
	return nil
}

// HasSection reports whether a section with the given id exists.
func (d *Document) HasSection(id string) bool {
	return d.FindSection(id) != nil
}

// Clone returns a deep copy of the document. Mutators operate on clones so
// callers holding the old value never observe the change.
func (d *Document) Clone() *Document {
	out := &Document{Name: d.Name}
	if d.Sections != nil {
		out.Sections = make([]Section, len(d.Sections))
		copy(out.Sections, d.Sections)
		for i := range out.Sections {
			s := &out.Sections[i]
			if s.Content.Items != nil {
				items := make([]ServiceItem, len(s.Content.Items))
				copy(items, s.Content.Items)
				s.Content.Items = items
			}
			if s.Content.Fields != nil {
				fields := make([]FormField, len(s.Content.Fields))
				copy(fields, s.Content.Fields)
				s.Content.Fields = fields
			}
		}
	}
	return out
}

// KindFromID extracts the section kind encoded as the id's leading segment
// before the first hyphen. Returns false for ids that do not carry a known
// kind prefix.
func KindFromID(id string) (SectionKind, bool) {
	for i := 0; i < len(id); i++ {
		if id[i] == '-' {
			k := SectionKind(id[:i])
			return k, k.Known()
		}
	}
	k := SectionKind(id)
	return k, k.Known()
}

// Known reports whether k is one of the eight section kinds.
func (k SectionKind) Known() bool {
	switch k {
	case KindHeader, KindAbout, KindServices, KindContact,
		KindText, KindImage, KindButton, KindForm:
		return true
	}
	return false
}

// PaletteItem describes one draggable entry in the elements panel.
type PaletteItem struct {
	Kind     SectionKind
	Name     string
	Icon     string
	Category Category
}

// Template is a pre-designed site layout from the template catalog.
type Template struct {
	ID          string
	Name        string
	Thumbnail   string
	Description string
}
