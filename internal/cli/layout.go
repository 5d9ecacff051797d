package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/layout"
)

// layoutCommand creates the layout command for computing base positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		engine string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute base positions for the stored document",
		Long: `Compute base positions for the stored document.

Runs the Graphviz layout engine over the document's flow structure and
writes the resulting base positions (nodes plus their label namespace) as
JSON. These are the positions the editor composes user overrides onto.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, output, engine)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "positions.json", "output file")
	cmd.Flags().StringVar(&engine, "engine", "dot", "graphviz layout engine: dot, neato, fdp")
	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, output, engine string) error {
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

	p := newProgress(loggerFromContext(cmd.Context()))
	spin := newSpinner(cmd.Context(), fmt.Sprintf("laying out %d nodes", len(doc.NodeIDs())))
	spin.Start()

	eng := &layout.GraphvizEngine{Engine: engine}
	src, err := eng.Compute(cmd.Context(), doc.Flows)
	if err != nil {
		spin.StopWithError("layout failed")
		return err
	}
	spin.Stop()

	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}

	p.done(fmt.Sprintf("Laid out %d nodes", len(doc.NodeIDs())))
	printFile(output)
	return nil
}
