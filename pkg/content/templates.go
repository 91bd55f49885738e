package content

import (
	"github.com/canvasite/canvasite-terminal/pkg/models"
)

// Templates returns the template catalog in display order.
func Templates() []models.Template {
	return []models.Template{
		{
			ID:          "template-1",
			Name:        "Business",
			Thumbnail:   "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			Description: "Professional template for businesses with services section and contact form.",
		},
		{
			ID:          "template-2",
			Name:        "Portfolio",
			Thumbnail:   "https://images.unsplash.com/photo-1545665277-5937489579f2?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			Description: "Showcase your work with this elegant portfolio template.",
		},
		{
			ID:          "template-3",
			Name:        "Restaurant",
			Thumbnail:   "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			Description: "Perfect for restaurants with menu sections and reservation form.",
		},
		{
			ID:          "template-4",
			Name:        "Event",
			Thumbnail:   "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			Description: "Ideal for promoting events with registration capabilities.",
		},
	}
}

// TemplateByName looks a template up case-sensitively by its display name.
func TemplateByName(name string) (models.Template, bool) {
	for _, t := range Templates() {
		if t.Name == name {
			return t, true
		}
	}
	return models.Template{}, false
}

// TemplateContentFor returns the template-flavored starter content for one
// of the four sections every template seeds. The header carries the site
// name; the rest match the generic defaults except for the about text.
func TemplateContentFor(kind models.SectionKind, siteName string) models.Content {
	switch kind {
	case models.KindHeader:
		return models.Content{Title: siteName, Subtitle: "Welcome to my website"}
	case models.KindAbout:
		return models.Content{Title: "About Us", Body: "Information about our business or service."}
	default:
		return DefaultContentFor(kind)
	}
}
