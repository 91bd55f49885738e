package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/canvasite/canvasite-terminal/pkg/files"
	"github.com/canvasite/canvasite-terminal/pkg/models"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() (*CommandContext, error) {
	return &CommandContext{
		ProjectPath: files.CanvasiteDir,
	}, nil
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .canvasite directory found. Run 'canvasite init' first")
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// ResolveSiteFile accepts a saved site reference with or without the .yaml
// suffix and returns the filename under sites/.
func ResolveSiteFile(ref string) (string, error) {
	candidates := []string{ref}
	if !strings.HasSuffix(ref, ".yaml") {
		candidates = append(candidates, ref+".yaml")
	}

	saved, err := files.ListSites()
	if err != nil {
		return "", err
	}

	for _, candidate := range candidates {
		for _, name := range saved {
			if name == candidate {
				return name, nil
			}
		}
	}
	return "", fmt.Errorf("site '%s' not found. Run 'canvasite sites' to see saved sites", ref)
}
