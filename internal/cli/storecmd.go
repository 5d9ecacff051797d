package cli

import (
	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/persist"
)

// storeCommand creates the store command group for backend maintenance.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the persistence backend",
	}
	cmd.AddCommand(c.storePurgeCommand())
	cmd.AddCommand(c.storeInfoCommand())
	return cmd
}

func (c *CLI) storePurgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete the stored document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := c.newKV(cmd.Context())
			if err != nil {
				return err
			}
			defer kv.Close()

			if err := kv.Delete(cmd.Context(), persist.DocumentKey); err != nil {
				return err
			}
			printSuccess("purged document from backend %q", c.Config.Backend)
			return nil
		},
	}
}

func (c *CLI) storeInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show backend and stored document status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := c.newKV(cmd.Context())
			if err != nil {
				return err
			}
			defer kv.Close()

			printKeyValue("backend", c.Config.Backend)
			printKeyValue("key", persist.DocumentKey)

			data, ok, err := kv.Get(cmd.Context(), persist.DocumentKey)
			if err != nil {
				return err
			}
			if !ok {
				printKeyValue("document", "none")
				return nil
			}
			printKeyValue("document", "present")
			printKeyValue("size", byteCount(len(data)))
			return nil
		},
	}
}
