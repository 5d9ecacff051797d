package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/codec"
)

// exportCommand creates the export command for writing the stored document
// to a file.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored document to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "document.json", "output file")
	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, output string) error {
	kv, err := c.newKV(cmd.Context())
	if err != nil {
		return err
	}
	defer kv.Close()

	doc, ok, err := loadDocument(cmd.Context(), kv)
	if err != nil {
		return err
	}
	if !ok {
		printWarning("no document stored in backend %q", c.Config.Backend)
		return nil
	}

	data, err := codec.Encode(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}

	printSuccess("exported %q", doc.Settings.Title)
	printFile(output)
	return nil
}
