package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucidkit/lucidkit/pkg/document"
	"github.com/lucidkit/lucidkit/pkg/lucid"
)

// uploadCommand creates the "upload" command that imports a document file
// into Lucidchart.
func (c *CLI) uploadCommand() *cobra.Command {
	var (
		title   string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "upload <file.json>",
		Short: "Import a document into Lucidchart",
		Long: `Validate a document file and import it into Lucidchart through the
Lucid REST API. Pass "-" to read the document from stdin.

The API key is read from the LUCID_API_KEY environment variable, or from
the [api] key entry of config.toml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			path := args[0]

			var (
				doc *document.Document
				err error
			)
			if path == "-" {
				doc, err = document.ReadDocument(cmd.InOrStdin())
			} else {
				doc, err = document.ReadDocumentFile(path)
			}
			if err != nil {
				return err
			}
			logger.Debug("document validated", "path", path, "pages", len(doc.Pages))

			if title == "" {
				if len(doc.Pages) > 0 {
					title = doc.Pages[0].Title
				} else {
					title = "Untitled"
				}
			}

			client, err := c.newClient(noCache)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Uploading %q", title))
			spinner.Start()

			result, err := client.CreateDocument(cmd.Context(), lucid.CreateDocumentRequest{
				Title:    title,
				Document: doc,
			})
			if err != nil {
				spinner.StopWithError(fmt.Sprintf("Upload failed: %v", err))
				return err
			}
			spinner.Stop()
			prog.done("Uploaded document")

			printSuccess("Imported %q", result.Title)
			printKeyValue("document", result.DocumentID)
			if result.EditURL != "" {
				printKeyValue("edit", StyleLink.Render(result.EditURL))
			}
			if result.ViewURL != "" {
				printKeyValue("view", StyleLink.Render(result.ViewURL))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "document title (default: first page title)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the document metadata cache")
	return cmd
}
