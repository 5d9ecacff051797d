package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/codec"
	"github.com/flowcanvas/flowcanvas/pkg/diagram"
)

// inspectCommand creates the inspect command for summarizing a document.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		input  string
		browse bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the stored diagram document",
		Long: `Summarize the stored diagram document.

Reads the document from the configured backend (or from a file with --input)
and prints its title, flow and node counts, customization counts, and
settings. With --browse, opens an interactive flow browser instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, input, browse)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "read a document JSON file instead of the backend")
	cmd.Flags().BoolVarP(&browse, "browse", "b", false, "browse flows interactively")
	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, input string, browse bool) error {
	var doc diagram.Document

	if input != "" {
		data, err := os.ReadFile(input)
		if err != nil {
			return err
		}
		doc, err = codec.Decode(data)
		if err != nil {
			return err
		}
	} else {
		kv, err := c.newKV(cmd.Context())
		if err != nil {
			return err
		}
		defer kv.Close()

		var ok bool
		doc, ok, err = loadDocument(cmd.Context(), kv)
		if err != nil {
			return err
		}
		if !ok {
			printWarning("no document stored in backend %q", c.Config.Backend)
			return nil
		}
	}

	if browse {
		return browseFlows(doc.Flows)
	}

	fmt.Println(StyleTitle.Render(doc.Settings.Title))
	printStats(len(doc.Flows), len(doc.NodeIDs()),
		len(doc.NodeCustomizations)+len(doc.LabelCustomizations))
	fmt.Println()

	printKeyValue("canvas", fmt.Sprintf("%.0f × %.0f", doc.Settings.Width, doc.Settings.Height))
	printKeyValue("node width", fmt.Sprintf("%.0f", doc.Settings.NodeWidth))
	printKeyValue("node padding", fmt.Sprintf("%.0f", doc.Settings.NodePadding))
	printKeyValue("flow opacity", fmt.Sprintf("%.2f", doc.Settings.FlowOpacity))
	printKeyValue("color scheme", string(doc.Settings.ColorScheme))
	if doc.Settings.DataSourceNotes != "" {
		printKeyValue("notes", doc.Settings.DataSourceNotes)
	}

	if ids := doc.CustomizedNodeIDs(); len(ids) > 0 {
		fmt.Println()
		printInfo("customized nodes")
		for _, id := range ids {
			cust := doc.NodeCustomizations[id]
			if cust.HasPosition() {
				printDetail("%s  offset (%.1f, %.1f)", id, *cust.OffsetX, *cust.OffsetY)
			} else {
				printDetail("%s", id)
			}
		}
	}
	if ids := doc.CustomizedLabelIDs(); len(ids) > 0 {
		printInfo("customized labels")
		for _, id := range ids {
			printDetail("%s", id)
		}
	}
	return nil
}
