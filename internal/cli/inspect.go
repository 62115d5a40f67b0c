package cli

import (
	"github.com/spf13/cobra"

	"github.com/lucidkit/lucidkit/pkg/document"
)

// inspectCommand creates the "inspect" command that validates a document
// file and prints a summary.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.json>",
		Short: "Validate a document file and print its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.ReadDocumentFile(args[0])
			if err != nil {
				return err
			}

			shapes, lines := 0, 0
			for _, p := range doc.Pages {
				shapes += len(p.Shapes)
				lines += len(p.Lines)
			}

			printSuccess("Valid document (format version %d)", doc.Version)
			printStats(len(doc.Pages), shapes, lines)
			if shapes == 0 {
				printWarning("Document has no shapes; the import will render blank pages")
			}
			for _, p := range doc.Pages {
				title := p.Title
				if p.ID != nil {
					title += " " + StyleDim.Render("("+*p.ID+")")
				}
				printInfo("%s", StyleHighlight.Render(title))
				for _, s := range p.Shapes {
					printDetail("%s %s %q", entityID(s.ID), s.Type, s.Text)
				}
				for _, l := range p.Lines {
					printDetail("%s %s", entityID(l.ID), l.LineType)
				}
			}
			return nil
		},
	}
}

// entityID renders an entity identifier for display. A valid document may
// carry shapes or lines that were built standalone and never attached, so
// their identifiers can be absent.
func entityID(id *string) string {
	if id == nil {
		return "(unbound)"
	}
	return *id
}
