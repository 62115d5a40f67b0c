package cli

import (
	"github.com/spf13/cobra"
)

// fetchCommand creates the "fetch" command that retrieves metadata for an
// uploaded document.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		refresh bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <document-id>",
		Short: "Fetch metadata for an uploaded document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(noCache)
			if err != nil {
				return err
			}

			result, err := client.GetDocument(cmd.Context(), args[0], refresh)
			if err != nil {
				return err
			}

			printKeyValue("document", result.DocumentID)
			printKeyValue("title", result.Title)
			if result.EditURL != "" {
				printKeyValue("edit", StyleLink.Render(result.EditURL))
			}
			if result.ViewURL != "" {
				printKeyValue("view", StyleLink.Render(result.ViewURL))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and fetch fresh metadata")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the document metadata cache")
	return cmd
}

// trashCommand creates the "trash" command that moves an uploaded document
// to the trash.
func (c *CLI) trashCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "trash <document-id>",
		Short: "Move an uploaded document to the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient(noCache)
			if err != nil {
				return err
			}
			if err := client.TrashDocument(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Trashed %s", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the document metadata cache")
	return cmd
}
