package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/trellis-ui/trellis/internal/config"
	"github.com/trellis-ui/trellis/internal/preview"
	"github.com/trellis-ui/trellis/pkg/observe"
)

func serveCmd() *cobra.Command {
	var (
		port    int
		host    string
		noWatch bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve [manifest]",
		Short: "Start the preview server",
		Long: `Serve a component manifest with live reload.

The server re-materializes the manifest on every request, so edits show
up on refresh; with watching enabled, connected browsers reload
themselves when the manifest changes.

Endpoints:
  /         the rendered page
  /errors   recorded engine conditions (JSON)
  /metrics  Prometheus metrics
  /healthz  health probe

Examples:
  trellis serve
  trellis serve app.yaml --port=8080
  trellis serve --no-watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var manifestArg string
			if len(args) > 0 {
				manifestArg = args[0]
			}
			return runServe(manifestArg, port, host, noWatch, verbose)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from trellis.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from trellis.json)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Disable live reload")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	return cmd
}

func runServe(manifestArg string, port int, host string, noWatch, verbose bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(wd)
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return err
	}
	if manifestArg != "" {
		cfg.Manifest = manifestArg
	}
	if port > 0 {
		cfg.Serve.Port = port
	}
	if host != "" {
		cfg.Serve.Host = host
	}
	if noWatch {
		cfg.Serve.Watch = false
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srv := preview.New(cfg,
		preview.WithLogger(logger),
		preview.WithObserver(observe.NewMetrics()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info("preview at http://%s:%d (manifest %s)", cfg.Serve.Host, cfg.Serve.Port, cfg.ManifestPath())
	return srv.ListenAndServe(ctx)
}
