package cli

import (
	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/internal/server"
	"github.com/flowcanvas/flowcanvas/pkg/persist"
	"github.com/flowcanvas/flowcanvas/pkg/store"
)

// serveCommand creates the serve command for running the document API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diagram document over HTTP",
		Long: `Serve the diagram document over HTTP.

Loads the stored document into a state container and exposes it on a small
JSON API:

  GET    /healthz              liveness
  GET    /api/v1/document      current document payload
  PUT    /api/v1/document      replace the document (validated fail-closed)
  DELETE /api/v1/document      reset to empty defaults
  GET    /api/v1/positions     composed final positions (base + overrides)

Writes back to the backend are coalesced; storage failures degrade the
server to in-memory-only operation instead of failing requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8480)")
	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, addr string) error {
	if addr == "" {
		addr = c.Config.Server.Addr
	}

	kv, err := c.newKV(cmd.Context())
	if err != nil {
		return err
	}
	defer kv.Close()

	st := store.New()
	writer := persist.NewWriter(kv, persist.DocumentKey, c.saveDelay(), c.Logger)
	srv := server.New(st, kv, writer, c.Logger)

	if err := srv.LoadDocument(cmd.Context()); err != nil {
		return err
	}
	c.Logger.Info("document loaded", "flows", st.FlowCount(), "backend", c.Config.Backend)

	return srv.ListenAndServe(cmd.Context(), addr)
}
