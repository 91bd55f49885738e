package models

// Settings represents the application configuration
type Settings struct {
	Output OutputSettings `yaml:"output"`
	UI     UISettings     `yaml:"ui"`
}

// OutputSettings controls export behavior
type OutputSettings struct {
	ExportPath      string `yaml:"export_path"`
	DefaultFilename string `yaml:"default_filename"`
}

// UISettings controls UI preferences
type UISettings struct {
	ColorScheme SchemeName `yaml:"color_scheme"`
	ShowPalette bool       `yaml:"show_palette"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputSettings{
			ExportPath:      "./",
			DefaultFilename: "index.html",
		},
		UI: UISettings{
			ColorScheme: SchemeBlue,
			ShowPalette: true,
		},
	}
}
