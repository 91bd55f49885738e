package models

// ElementStyle is the full set of visual properties a section can override.
// Absence of an override means the section renders with DefaultElementStyle.
type ElementStyle struct {
	BackgroundColor string `yaml:"background_color"`
	TextColor       string `yaml:"text_color"`
	FontSize        string `yaml:"font_size"`
	FontWeight      string `yaml:"font_weight"`
	FontFamily      string `yaml:"font_family"`
	TextAlign       string `yaml:"text_align"`
	Padding         string `yaml:"padding"`
	Margin          string `yaml:"margin"`
	BorderWidth     string `yaml:"border_width"`
	BorderColor     string `yaml:"border_color"`
	BorderRadius    string `yaml:"border_radius"`
	BoxShadow       string `yaml:"box_shadow"`
	Animation       string `yaml:"animation"`
}

// DefaultElementStyle returns the style every section starts with.
func DefaultElementStyle() ElementStyle {
	return ElementStyle{
		BackgroundColor: "transparent",
		TextColor:       "#000000",
		FontSize:        "16px",
		FontWeight:      "normal",
		FontFamily:      "Inter",
		TextAlign:       "left",
		Padding:         "16px",
		Margin:          "8px",
		BorderWidth:     "0px",
		BorderColor:     "#e2e8f0",
		BorderRadius:    "8px",
		BoxShadow:       "none",
		Animation:       "none",
	}
}

// StyleField names one property of an ElementStyle for keyed updates.
type StyleField string

const (
	FieldBackgroundColor StyleField = "backgroundColor"
	FieldTextColor       StyleField = "textColor"
	FieldFontSize        StyleField = "fontSize"
	FieldFontWeight      StyleField = "fontWeight"
	FieldFontFamily      StyleField = "fontFamily"
	FieldTextAlign       StyleField = "textAlign"
	FieldPadding         StyleField = "padding"
	FieldMargin          StyleField = "margin"
	FieldBorderWidth     StyleField = "borderWidth"
	FieldBorderColor     StyleField = "borderColor"
	FieldBorderRadius    StyleField = "borderRadius"
	FieldBoxShadow       StyleField = "boxShadow"
	FieldAnimation       StyleField = "animation"
)

// Fixed option lists the styling panel offers. These are also the only
// values the style store accepts for non-color fields.
var (
	FontSizes     = []string{"12px", "14px", "16px", "18px", "20px", "24px", "32px", "48px"}
	FontWeights   = []string{"normal", "bold", "lighter", "bolder"}
	FontFamilies  = []string{"Inter", "Roboto", "Open Sans", "Montserrat"}
	TextAligns    = []string{"left", "center", "right", "justify"}
	SpacingSteps  = []string{"0px", "8px", "16px", "24px", "32px"}
	BorderWidths  = []string{"0px", "1px", "2px", "4px"}
	BorderRadii   = []string{"0px", "4px", "8px", "16px", "50%"}
	BoxShadows    = []string{"none", "0 1px 3px rgba(0,0,0,0.1)", "0 4px 6px rgba(0,0,0,0.1)", "0 10px 25px rgba(0,0,0,0.15)"}
	Animations    = []string{"none", "pulse", "bounce", "fade-in", "slide-in"}
)

// SchemeName selects one of the catalog color schemes.
type SchemeName string

const (
	SchemeBlue   SchemeName = "blue"
	SchemePurple SchemeName = "purple"
	SchemeGreen  SchemeName = "green"
	SchemeOrange SchemeName = "orange"
)

// ColorScheme is a primary/secondary/accent triple applied during preview
// rendering.
type ColorScheme struct {
	Primary   string
	Secondary string
	Accent    string
}

var colorSchemes = map[SchemeName]ColorScheme{
	SchemeBlue:   {Primary: "#3b82f6", Secondary: "#60a5fa", Accent: "#2563eb"},
	SchemePurple: {Primary: "#8b5cf6", Secondary: "#a78bfa", Accent: "#7c3aed"},
	SchemeGreen:  {Primary: "#10b981", Secondary: "#34d399", Accent: "#059669"},
	SchemeOrange: {Primary: "#f97316", Secondary: "#fb923c", Accent: "#ea580c"},
}

// SchemeNames lists the catalog in display order.
func SchemeNames() []SchemeName {
	return []SchemeName{SchemeBlue, SchemePurple, SchemeGreen, SchemeOrange}
}

// Scheme resolves a scheme name, falling back to blue for unknown names so
// the preview always has colors to work with.
func Scheme(name SchemeName) ColorScheme {
	if s, ok := colorSchemes[name]; ok {
		return s
	}
	return colorSchemes[SchemeBlue]
}
