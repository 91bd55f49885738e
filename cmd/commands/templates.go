package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canvasite/canvasite-terminal/pkg/content"
)

// NewTemplatesCommand creates the templates command
func NewTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available site templates",
		Long: `List the templates a new site can be created from.

Each template seeds a site with a header, about, services, and contact
section pre-filled with starter content.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range content.Templates() {
				fmt.Printf("%-12s %s\n", t.Name, t.Description)
			}
			return nil
		},
	}
}
