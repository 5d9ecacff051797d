package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/codec"
	"github.com/flowcanvas/flowcanvas/pkg/persist"
)

// importCommand creates the import command for loading a document file into
// the backend.
func (c *CLI) importCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <document.json>",
		Short: "Validate a document file and store it in the backend",
		Long: `Validate a document file and store it in the backend.

The file must be a versioned document payload. It is structurally validated
in full before anything is written: a malformed file is rejected outright
and the stored document is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImport(cmd, args[0])
		},
	}
	return cmd
}

func (c *CLI) runImport(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Decode and re-encode: normalizes the payload and proves it valid
	// before it replaces the stored document.
	doc, err := codec.Decode(data)
	if err != nil {
		return err
	}
	normalized, err := codec.Encode(doc)
	if err != nil {
		return err
	}

	kv, err := c.newKV(cmd.Context())
	if err != nil {
		return err
	}
	defer kv.Close()

	if err := kv.Set(cmd.Context(), persist.DocumentKey, normalized); err != nil {
		return err
	}

	printSuccess("imported %q (%d flows)", doc.Settings.Title, len(doc.Flows))
	return nil
}
