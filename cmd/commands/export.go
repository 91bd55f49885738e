package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/canvasite/canvasite-terminal/internal/cli"
	"github.com/canvasite/canvasite-terminal/pkg/files"
	"github.com/canvasite/canvasite-terminal/pkg/models"
	"github.com/canvasite/canvasite-terminal/pkg/render"
	"github.com/canvasite/canvasite-terminal/pkg/styles"
)

var (
	exportOutputFile  string
	exportToClipboard bool
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <site>",
		Short: "Export a saved site as a static HTML page",
		Long: `Render a saved site with its stored color scheme and write the result as
a standalone HTML page.

Without --output-file the destination comes from the project settings
(output.export_path and output.default_filename).

Examples:
  canvasite export my-portfolio-website
  canvasite export my-portfolio-website --output-file site.html
  canvasite export my-portfolio-website --copy`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runExport,
	}

	cmd.Flags().StringVar(&exportOutputFile, "output-file", "", "Write to this path instead of the settings default")
	cmd.Flags().BoolVar(&exportToClipboard, "copy", false, "Copy the HTML to the clipboard as well")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	filename, err := cli.ResolveSiteFile(args[0])
	if err != nil {
		return err
	}

	record, err := files.ReadSite(filename)
	if err != nil {
		return err
	}

	store := styles.NewStore(nil)
	tree := render.Project(&record.Site, store, models.Scheme(record.Scheme), render.ModePreview)
	html := render.ExportHTML(record.Site.Name, tree)

	ctx, _ := cli.NewCommandContext()
	outPath := exportOutputFile
	if outPath == "" {
		outPath = defaultExportPath(ctx.LoadSettingsWithDefault())
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	if exportToClipboard {
		if err := clipboard.WriteAll(html); err != nil {
			cli.PrintWarning("could not copy to clipboard: %v", err)
		} else {
			cli.PrintInfo("HTML copied to clipboard")
		}
	}

	cli.PrintSuccess("Exported %q to %s", record.Site.Name, outPath)
	return nil
}

// defaultExportPath builds the export destination from the project settings.
func defaultExportPath(settings *models.Settings) string {
	filename := settings.Output.DefaultFilename
	if filename == "" {
		filename = "index.html"
	}
	return filepath.Join(settings.Output.ExportPath, filename)
}
