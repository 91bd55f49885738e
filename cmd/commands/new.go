package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canvasite/canvasite-terminal/internal/cli"
	"github.com/canvasite/canvasite-terminal/pkg/content"
	"github.com/canvasite/canvasite-terminal/pkg/files"
	"github.com/canvasite/canvasite-terminal/pkg/session"
)

var newSiteName string

// NewNewCommand creates the new command
func NewNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <template>",
		Short: "Create a saved site from a template",
		Long: `Create a new site seeded from one of the catalog templates and save it
under .canvasite/sites/.

Examples:
  canvasite new Portfolio
  canvasite new Business --name "Acme Corp"`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runNew,
	}

	cmd.Flags().StringVar(&newSiteName, "name", "", "Site name (default: \"My <template> Website\")")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	tmpl, ok := content.TemplateByName(args[0])
	if !ok {
		return fmt.Errorf("unknown template '%s'. Run 'canvasite templates' to see the catalog", args[0])
	}

	siteName := newSiteName
	if siteName == "" {
		siteName = fmt.Sprintf("My %s Website", tmpl.Name)
	}
	if files.SiteExists(siteName) {
		ok, err := cli.Confirm(fmt.Sprintf("Site %q already exists. Overwrite it?", siteName), false)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("Aborted; existing site left untouched.")
			return nil
		}
	}

	ctx, _ := cli.NewCommandContext()
	settings := ctx.LoadSettingsWithDefault()

	sess := session.New(session.Config{Scheme: settings.UI.ColorScheme})
	sess.ApplyTemplate(tmpl)
	if newSiteName != "" {
		sess.RenameSite(newSiteName)
	}

	record := &files.SiteRecord{
		Scheme: sess.Scheme(),
		Site:   *sess.Document(),
	}
	if err := files.WriteSite(record); err != nil {
		return fmt.Errorf("failed to save site: %w", err)
	}
	sess.Save()

	cli.PrintSuccess("Created site %q from the %s template (%d sections)",
		sess.Document().Name, tmpl.Name, len(sess.Document().Sections))
	return nil
}
