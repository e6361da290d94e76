package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API in the foreground until interrupted.

Endpoints:
  POST /api/v1/resolve   {"url": "..."}
  GET  /api/v1/search    ?q=<title>&type=movie|series
  GET  /api/v1/status
  GET  /metrics`,
	Args: cobra.NoArgs,
	RunE: runServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServeCmd(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	a.Log.Info("starting moviefetch", "version", version,
		"addr", a.Config.Server.Host, "port", a.Config.Server.Port)
	return a.Serve(ctx)
}
