// Package content holds the static catalogs the builder materializes new
// sections from: the element palette, per-kind default content, and the
// template library.
package content

import (
	"github.com/canvasite/canvasite-terminal/pkg/models"
)

const placeholderImage = "https://images.unsplash.com/photo-1581291518857-4e27b48ff24e?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80"

// Palette returns the draggable entries shown in the elements panel, in
// display order: structural sections first, then elements.
func Palette() []models.PaletteItem {
	return []models.PaletteItem{
		{Kind: models.KindHeader, Name: "Header", Icon: "HeaderIcon", Category: models.CategoryStructure},
		{Kind: models.KindAbout, Name: "About", Icon: "Info", Category: models.CategoryStructure},
		{Kind: models.KindServices, Name: "Services", Icon: "Briefcase", Category: models.CategoryStructure},
		{Kind: models.KindContact, Name: "Contact", Icon: "Mail", Category: models.CategoryStructure},
		{Kind: models.KindText, Name: "Text", Icon: "Type", Category: models.CategoryElement},
		{Kind: models.KindImage, Name: "Image", Icon: "Image", Category: models.CategoryElement},
		{Kind: models.KindButton, Name: "Button", Icon: "MousePointerClick", Category: models.CategoryElement},
		{Kind: models.KindForm, Name: "Form", Icon: "FormInput", Category: models.CategoryElement},
	}
}

// PaletteItemFor looks up the palette entry for a kind.
func PaletteItemFor(kind models.SectionKind) (models.PaletteItem, bool) {
	for _, item := range Palette() {
		if item.Kind == kind {
			return item, true
		}
	}
	return models.PaletteItem{}, false
}

// DefaultContentFor returns the starter content for a freshly created
// section of the given kind. Total: unknown kinds get an empty payload,
// never an error. Only consulted at section creation time.
func DefaultContentFor(kind models.SectionKind) models.Content {
	switch kind {
	case models.KindHeader:
		return models.Content{
			Title:    "Welcome to My Website",
			Subtitle: "A great place to share your ideas",
		}
	case models.KindAbout:
		return models.Content{
			Title: "About Us",
			Body:  "Write about your company or yourself here.",
		}
	case models.KindServices:
		return models.Content{
			Title: "Our Services",
			Items: []models.ServiceItem{
				{Title: "Service 1", Description: "Description for service 1"},
				{Title: "Service 2", Description: "Description for service 2"},
				{Title: "Service 3", Description: "Description for service 3"},
			},
		}
	case models.KindContact:
		return models.Content{
			Title: "Contact Us",
			Email: "contact@example.com",
			Phone: "(123) 456-7890",
		}
	case models.KindText:
		return models.Content{Body: "Click to edit this text"}
	case models.KindImage:
		return models.Content{Src: placeholderImage, Alt: "Placeholder image"}
	case models.KindButton:
		return models.Content{Label: "Click Me", URL: "#"}
	case models.KindForm:
		return models.Content{
			Title: "Contact Form",
			Fields: []models.FormField{
				{Type: "text", Label: "Name", Required: true},
				{Type: "email", Label: "Email", Required: true},
				{Type: "textarea", Label: "Message", Required: true},
			},
		}
	default:
		return models.Content{}
	}
}
