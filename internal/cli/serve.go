package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvltree/internal/ctxlog"
	"github.com/katalvlaran/lvltree/internal/server"
)

// newServeCommand creates the "serve" command.
func newServeCommand(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /traverse over HTTP",
		Long: `Start the HTTP API. POST /traverse accepts {"nodes": [1, 2, null, 3]} and
returns every traversal order. Stops gracefully on SIGINT or SIGTERM.

The listen address comes from --addr, then LVLTREE_ADDR, then PORT, then the
config file (default ":3000").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(a.cfg, ctxlog.FromContext(ctx)).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
