package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canvasite/canvasite-terminal/internal/cli"
	"github.com/canvasite/canvasite-terminal/pkg/files"
)

// NewSitesCommand creates the sites command
func NewSitesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List saved sites",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := files.ListSites()
			if err != nil {
				return err
			}
			if len(saved) == 0 {
				cli.PrintInfo("No saved sites yet. Run 'canvasite new <template>' to create one.")
				return nil
			}
			for _, name := range saved {
				record, err := files.ReadSite(name)
				if err != nil {
					cli.PrintWarning("skipping %s: %v", name, err)
					continue
				}
				fmt.Printf("%-30s %-20s %d sections\n", name, record.Site.Name, len(record.Site.Sections))
			}
			return nil
		},
	}
}
