package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/vista/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			api := server.NewWebAPI(app.Logger, server.Config{
				Addr: addr,
				Dark: app.Dark,
				Dependencies: server.Dependencies{
					Dashboard: app.Dashboard,
					Exports:   app.Exports,
					Filters:   app.Filters,
				},
			})
			return api.Start(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from VISTA_ADDR)")
	return cmd
}
