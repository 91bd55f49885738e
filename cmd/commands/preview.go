package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canvasite/canvasite-terminal/internal/cli"
	"github.com/canvasite/canvasite-terminal/pkg/files"
	"github.com/canvasite/canvasite-terminal/pkg/models"
	"github.com/canvasite/canvasite-terminal/pkg/render"
	"github.com/canvasite/canvasite-terminal/pkg/styles"
)

var (
	previewWidth  int
	previewEditor bool
)

// NewPreviewCommand creates the preview command
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <site>",
		Short: "Render a saved site in the terminal",
		Long: `Render a saved site to the terminal using its stored color scheme.

By default the preview-mode projection is used; --editor renders the
annotated editor layout instead.

Examples:
  canvasite preview my-portfolio-website
  canvasite preview my-portfolio-website --editor --width 100`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runPreview,
	}

	cmd.Flags().IntVar(&previewWidth, "width", 80, "Render width in columns")
	cmd.Flags().BoolVar(&previewEditor, "editor", false, "Render the editor layout instead of the preview")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	filename, err := cli.ResolveSiteFile(args[0])
	if err != nil {
		return err
	}

	record, err := files.ReadSite(filename)
	if err != nil {
		return err
	}

	mode := render.ModePreview
	if previewEditor {
		mode = render.ModeEditor
	}

	// A fresh store renders everything with default styling; overrides
	// are session-scoped and not persisted.
	store := styles.NewStore(nil)
	tree := render.Project(&record.Site, store, models.Scheme(record.Scheme), mode)

	renderer := render.NewTermRenderer(previewWidth, mode)
	fmt.Println(renderer.Render(tree))
	return nil
}
