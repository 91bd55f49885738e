package content

import (
	"reflect"
	"testing"

	"github.com/canvasite/canvasite-terminal/pkg/models"
)

func TestDefaultContentForKnownKinds(t *testing.T) {
	tests := []struct {
		kind  models.SectionKind
		check func(t *testing.T, c models.Content)
	}{
		{models.KindHeader, func(t *testing.T, c models.Content) {
			if c.Title != "Welcome to My Website" {
				t.Errorf("header title = %q", c.Title)
			}
			if c.Subtitle == "" {
				t.Error("header subtitle empty")
			}
		}},
		{models.KindAbout, func(t *testing.T, c models.Content) {
			if c.Title != "About Us" || c.Body == "" {
				t.Errorf("about content = %+v", c)
			}
		}},
		{models.KindServices, func(t *testing.T, c models.Content) {
			if len(c.Items) != 3 {
				t.Fatalf("services items = %d, want 3", len(c.Items))
			}
			if c.Items[0].Title != "Service 1" {
				t.Errorf("first item = %q", c.Items[0].Title)
			}
		}},
		{models.KindContact, func(t *testing.T, c models.Content) {
			if c.Email != "contact@example.com" || c.Phone != "(123) 456-7890" {
				t.Errorf("contact content = %+v", c)
			}
		}},
		{models.KindText, func(t *testing.T, c models.Content) {
			if c.Body != "Click to edit this text" {
				t.Errorf("text body = %q", c.Body)
			}
		}},
		{models.KindImage, func(t *testing.T, c models.Content) {
			if c.Src == "" || c.Alt != "Placeholder image" {
				t.Errorf("image content = %+v", c)
			}
			if c.FromMediaLibrary {
				t.Error("default image should not be flagged as library asset")
			}
		}},
		{models.KindButton, func(t *testing.T, c models.Content) {
			if c.Label != "Click Me" || c.URL != "#" {
				t.Errorf("button content = %+v", c)
			}
		}},
		{models.KindForm, func(t *testing.T, c models.Content) {
			if len(c.Fields) != 3 {
				t.Fatalf("form fields = %d, want 3", len(c.Fields))
			}
			if c.Fields[2].Type != "textarea" {
				t.Errorf("third field type = %q, want textarea", c.Fields[2].Type)
			}
			for _, f := range c.Fields {
				if !f.Required {
					t.Errorf("field %q should be required", f.Label)
				}
			}
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			tt.check(t, DefaultContentFor(tt.kind))
		})
	}
}

func TestDefaultContentForUnknownKind(t *testing.T) {
	got := DefaultContentFor("mystery")
	if !reflect.DeepEqual(got, models.Content{}) {
		t.Errorf("unknown kind content = %+v, want empty", got)
	}
}

func TestPaletteGrouping(t *testing.T) {
	items := Palette()
	if len(items) != 8 {
		t.Fatalf("palette has %d items, want 8", len(items))
	}

	// Structural sections come first, then elements; no interleaving.
	seenElement := false
	for _, item := range items {
		if item.Category == models.CategoryElement {
			seenElement = true
		} else if seenElement {
			t.Fatalf("structure item %s after elements", item.Kind)
		}
	}
}

func TestPaletteItemFor(t *testing.T) {
	item, ok := PaletteItemFor(models.KindButton)
	if !ok || item.Name != "Button" || item.Icon != "MousePointerClick" {
		t.Errorf("PaletteItemFor(button) = %+v, %v", item, ok)
	}
	if _, ok := PaletteItemFor("mystery"); ok {
		t.Error("PaletteItemFor(mystery) should not resolve")
	}
}

func TestTemplateCatalog(t *testing.T) {
	if len(Templates()) != 4 {
		t.Fatalf("catalog has %d templates, want 4", len(Templates()))
	}

	tmpl, ok := TemplateByName("Portfolio")
	if !ok || tmpl.ID != "template-2" {
		t.Errorf("TemplateByName(Portfolio) = %+v, %v", tmpl, ok)
	}
	if _, ok := TemplateByName("portfolio"); ok {
		t.Error("template lookup should be case-sensitive")
	}
}

func TestTemplateContentFor(t *testing.T) {
	c := TemplateContentFor(models.KindHeader, "My Portfolio Website")
	if c.Title != "My Portfolio Website" || c.Subtitle != "Welcome to my website" {
		t.Errorf("template header content = %+v", c)
	}

	about := TemplateContentFor(models.KindAbout, "My Portfolio Website")
	if about.Body != "Information about our business or service." {
		t.Errorf("template about body = %q", about.Body)
	}

	// The remaining kinds fall back to the generic defaults.
	if got := TemplateContentFor(models.KindServices, "x"); len(got.Items) != 3 {
		t.Errorf("template services items = %d, want 3", len(got.Items))
	}
}
