package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/chronos/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.HTTPAddr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := api.NewServer(app.Scenarios, app.Library, app.ClusterThreshold, app.Logger)
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from CHRONOS_HTTP_ADDR)")
	return cmd
}
