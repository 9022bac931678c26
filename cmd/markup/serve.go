package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/pkg/middleware"
	"github.com/vango-dev/markup/pkg/server"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the render server",
		Long: `Start the render server.

Routes:
  POST /render        render the document in the request body
  GET  /docs/{name}   render a document from the documents directory
  GET  /ws            live rendering, one document per text frame
  GET  /healthz       liveness check
  GET  /metrics       Prometheus metrics (when metrics.enabled)

Examples:
  markup serve
  markup serve --port=9000
  markup serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				a.cfg.Server.Port = port
			}
			if host != "" {
				a.cfg.Server.Host = host
			}
			return a.runServe(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from markup.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from markup.json)")

	return cmd
}

func (a *app) runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	sc := server.ConfigFrom(a.cfg)
	sc.Logger = a.logger

	opts := []server.Option{server.WithDecoder(a.decoder())}
	if a.cfg.Metrics.Enabled {
		metrics := middleware.NewMetrics(middleware.WithNamespace(a.cfg.Metrics.Namespace))
		opts = append(opts, server.WithMetrics(metrics, nil))
	}
	if a.cfg.Tracing.Enabled {
		opts = append(opts, server.WithTracing(middleware.WithTracerName(a.cfg.Tracing.TracerName)))
	}

	a.logger.Info("serving documents", "dir", sc.DocumentsDir, "metrics", a.cfg.Metrics.Enabled, "tracing", a.cfg.Tracing.Enabled)
	return server.New(sc, opts...).Run(ctx)
}
