package cli

import (
	"github.com/spf13/cobra"

	"github.com/mathilda-val/shopaudit-lite/internal/server"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the audit engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.ListenAndServe(addr, nil)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")

	return cmd
}
