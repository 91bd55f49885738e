// Package files owns the .canvasite project directory: saved sites,
// exported pages, and settings. The page core never touches disk; commands
// and the TUI persist through here.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/canvasite/canvasite-terminal/pkg/models"
)

const (
	CanvasiteDir = ".canvasite"
	SitesDir     = "sites"
	PublishedDir = "published"
	SettingsFile = "settings.yaml"
)

// SiteRecord is the on-disk shape of a saved site: the document plus the
// scheme it was being previewed with. Style overrides live with the
// session and are not persisted.
type SiteRecord struct {
	Scheme models.SchemeName `yaml:"color_scheme"`
	Site   models.Document   `yaml:"site"`
}

func InitProjectStructure() error {
	dirs := []string{
		CanvasiteDir,
		filepath.Join(CanvasiteDir, SitesDir),
		filepath.Join(CanvasiteDir, PublishedDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// SiteFilename derives the yaml filename a site is stored under.
func SiteFilename(name string) string {
	slug := strings.TrimSpace(strings.ToLower(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "site"
	}
	return slug + ".yaml"
}

// SiteExists reports whether a site with the given name is already saved.
func SiteExists(name string) bool {
	absPath := filepath.Join(CanvasiteDir, SitesDir, SiteFilename(name))
	_, err := os.Stat(absPath)
	return err == nil
}

func ReadSite(filename string) (*SiteRecord, error) {
	absPath := filepath.Join(CanvasiteDir, SitesDir, filename)

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read site %s: %w", filename, err)
	}

	var record SiteRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse site YAML %s: %w", filename, err)
	}

	return &record, nil
}

func WriteSite(record *SiteRecord) error {
	filename := SiteFilename(record.Site.Name)
	absPath := filepath.Join(CanvasiteDir, SitesDir, filename)

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("failed to create sites directory: %w", err)
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal site to YAML: %w", err)
	}

	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write site %s: %w", filename, err)
	}

	return nil
}

func ListSites() ([]string, error) {
	sitesPath := filepath.Join(CanvasiteDir, SitesDir)

	entries, err := os.ReadDir(sitesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	var sites []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			sites = append(sites, entry.Name())
		}
	}
	return sites, nil
}

// WriteExport stores a rendered HTML page under published/ and returns the
// path it was written to.
func WriteExport(siteName, html string) (string, error) {
	filename := strings.TrimSuffix(SiteFilename(siteName), ".yaml") + ".html"
	absPath := filepath.Join(CanvasiteDir, PublishedDir, filename)

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create published directory: %w", err)
	}

	if err := os.WriteFile(absPath, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("failed to write export %s: %w", filename, err)
	}

	return absPath, nil
}

func ReadSettings() (*models.Settings, error) {
	absPath := filepath.Join(CanvasiteDir, SettingsFile)

	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

func WriteSettings(settings *models.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	absPath := filepath.Join(CanvasiteDir, SettingsFile)
	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
