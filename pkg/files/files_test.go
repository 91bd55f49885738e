package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/canvasite/canvasite-terminal/pkg/models"
)

func setupTestDir(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure: %v", err)
	}
}

func TestInitProjectStructure(t *testing.T) {
	setupTestDir(t)

	for _, dir := range []string{
		CanvasiteDir,
		filepath.Join(CanvasiteDir, SitesDir),
		filepath.Join(CanvasiteDir, PublishedDir),
	} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("missing directory %s: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
}

func TestSiteFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My New Website", "my-new-website.yaml"},
		{"Acme & Co.", "acme--co.yaml"},
		{"  Trimmed  ", "trimmed.yaml"},
		{"日本語", "site.yaml"},
		{"", "site.yaml"},
	}
	for _, tt := range tests {
		if got := SiteFilename(tt.name); got != tt.want {
			t.Errorf("SiteFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSiteRoundtrip(t *testing.T) {
	setupTestDir(t)

	record := &SiteRecord{
		Scheme: models.SchemePurple,
		Site: models.Document{
			Name: "Round Trip",
			Sections: []models.Section{
				{
					ID:   "header-1699999",
					Kind: models.KindHeader,
					Name: "Header",
					Content: models.Content{
						Title:    "Hello",
						Subtitle: "World",
					},
				},
				{
					ID:   "form-1700000",
					Kind: models.KindForm,
					Content: models.Content{
						Title:  "Contact Form",
						Fields: []models.FormField{{Type: "email", Label: "Email", Required: true}},
					},
				},
			},
		},
	}

	if err := WriteSite(record); err != nil {
		t.Fatalf("WriteSite: %v", err)
	}

	got, err := ReadSite(SiteFilename("Round Trip"))
	if err != nil {
		t.Fatalf("ReadSite: %v", err)
	}
	if got.Scheme != models.SchemePurple {
		t.Errorf("scheme = %q", got.Scheme)
	}
	if got.Site.Name != "Round Trip" {
		t.Errorf("name = %q", got.Site.Name)
	}
	if len(got.Site.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(got.Site.Sections))
	}
	if got.Site.Sections[0].Kind != models.KindHeader || got.Site.Sections[0].Content.Title != "Hello" {
		t.Errorf("first section = %+v", got.Site.Sections[0])
	}
	fields := got.Site.Sections[1].Content.Fields
	if len(fields) != 1 || fields[0].Type != "email" || !fields[0].Required {
		t.Errorf("form fields = %+v", fields)
	}
}

func TestSiteExists(t *testing.T) {
	setupTestDir(t)

	if SiteExists("My Portfolio Website") {
		t.Error("site reported before it was written")
	}

	record := &SiteRecord{Site: models.Document{Name: "My Portfolio Website"}}
	if err := WriteSite(record); err != nil {
		t.Fatalf("WriteSite: %v", err)
	}

	if !SiteExists("My Portfolio Website") {
		t.Error("saved site not reported")
	}
	if SiteExists("Some Other Site") {
		t.Error("unrelated name reported as existing")
	}
}

func TestReadSiteMissing(t *testing.T) {
	setupTestDir(t)

	if _, err := ReadSite("nope.yaml"); err == nil {
		t.Error("expected error for missing site")
	}
}

func TestListSites(t *testing.T) {
	setupTestDir(t)

	sites, err := ListSites()
	if err != nil {
		t.Fatalf("ListSites: %v", err)
	}
	if len(sites) != 0 {
		t.Errorf("fresh project lists %d sites", len(sites))
	}

	for _, name := range []string{"Alpha", "Beta"} {
		if err := WriteSite(&SiteRecord{Site: models.Document{Name: name}}); err != nil {
			t.Fatalf("WriteSite(%s): %v", name, err)
		}
	}
	// Non-yaml entries are ignored.
	os.WriteFile(filepath.Join(CanvasiteDir, SitesDir, "notes.txt"), []byte("x"), 0644)

	sites, err = ListSites()
	if err != nil {
		t.Fatalf("ListSites: %v", err)
	}
	if len(sites) != 2 {
		t.Errorf("listed %d sites, want 2: %v", len(sites), sites)
	}
}

func TestWriteExport(t *testing.T) {
	setupTestDir(t)

	path, err := WriteExport("My Site", "<!DOCTYPE html><html></html>")
	if err != nil {
		t.Fatalf("WriteExport: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(PublishedDir, "my-site.html")) {
		t.Errorf("export path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Errorf("export content = %q", data)
	}
}

func TestSettingsDefaultWhenMissing(t *testing.T) {
	setupTestDir(t)

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings: %v", err)
	}
	want := models.DefaultSettings()
	if settings.UI.ColorScheme != want.UI.ColorScheme ||
		settings.Output.DefaultFilename != want.Output.DefaultFilename {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestSettingsRoundtrip(t *testing.T) {
	setupTestDir(t)

	settings := models.DefaultSettings()
	settings.UI.ColorScheme = models.SchemeOrange
	settings.Output.ExportPath = "./out"

	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings: %v", err)
	}

	got, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings: %v", err)
	}
	if got.UI.ColorScheme != models.SchemeOrange {
		t.Errorf("scheme = %q", got.UI.ColorScheme)
	}
	if got.Output.ExportPath != "./out" {
		t.Errorf("export path = %q", got.Output.ExportPath)
	}
}
