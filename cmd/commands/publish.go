package commands

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/canvasite/canvasite-terminal/internal/cli"
	"github.com/canvasite/canvasite-terminal/pkg/files"
	"github.com/canvasite/canvasite-terminal/pkg/models"
	"github.com/canvasite/canvasite-terminal/pkg/publish"
	"github.com/canvasite/canvasite-terminal/pkg/session"
)

var (
	publishTimeout time.Duration
	publishCopyURL bool
)

// NewPublishCommand creates the publish command
func NewPublishCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish <site>",
		Short: "Publish a saved site",
		Long: `Publish a saved site through the publishing service and print the public
URL.

Publishing can fail transiently; it is safe to run the command again
right away.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runPublish,
	}

	cmd.Flags().DurationVar(&publishTimeout, "timeout", 30*time.Second, "Give up after this long")
	cmd.Flags().BoolVar(&publishCopyURL, "copy", false, "Copy the published URL to the clipboard")

	return cmd
}

func runPublish(cmd *cobra.Command, args []string) error {
	filename, err := cli.ResolveSiteFile(args[0])
	if err != nil {
		return err
	}

	record, err := files.ReadSite(filename)
	if err != nil {
		return err
	}

	sess := session.New(session.Config{
		Transport: publish.DefaultSimulator(),
		Scheme:    record.Scheme,
	})
	seedSession(sess, record)

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	cli.PrintInfo("Publishing %q...", record.Site.Name)
	url, err := sess.Publish(ctx)
	if err != nil {
		if errors.Is(err, publish.ErrServiceUnavailable) {
			cli.PrintWarning("The publishing service is temporarily unavailable. Please try again.")
		}
		return err
	}

	if publishCopyURL {
		if cerr := clipboard.WriteAll(url); cerr == nil {
			cli.PrintInfo("URL copied to clipboard")
		}
	}

	cli.PrintSuccess("Website published successfully! Visit: %s", url)
	return nil
}

// seedSession loads a saved document into a fresh session through the
// session's own mutators so its invariants hold.
func seedSession(sess *session.Session, record *files.SiteRecord) {
	sess.RenameSite(record.Site.Name)
	for _, s := range record.Site.Sections {
		kind := s.Kind
		if kind == "" {
			kind, _ = models.KindFromID(s.ID)
		}
		sess.AppendSection(kind, s.Content)
	}
}
