package cli

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/foelkdavid/zyfetch/pkg/collector"
	"github.com/foelkdavid/zyfetch/pkg/reporter"
	"github.com/foelkdavid/zyfetch/pkg/server"
	ver "github.com/foelkdavid/zyfetch/pkg/version"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Expose the report over HTTP",
		Description: `Starts an HTTP server exposing the same report the CLI prints:

  GET /           service descriptor (name, version, ready, routes)
  GET /v1/report  the JSON report document; ?fields= selects fields
  GET /health     liveness probe
  GET /ready      readiness probe
  GET /metrics    Prometheus registry

Requests carry an X-Request-Id and are rate limited; shutdown on
SIGINT/SIGTERM drains in-flight requests. The GPU probe is never run
for HTTP requests, and the server never mutates host state.

# Examples

Serve on the default port (8080, or the PORT environment variable):
  zyfetch serve

Serve on a specific address and port:
  zyfetch serve --address 127.0.0.1 --port 9090`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Listen address (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (default: PORT environment variable, then 8080)",
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	slog.Info("starting",
		"name", appName,
		"version", ver.Version,
		"commit", ver.Commit,
		"date", ver.Date,
	)

	cfg := server.DefaultConfig()
	if cmd.IsSet("address") {
		cfg.Address = cmd.String("address")
	}
	if cmd.IsSet("port") {
		cfg.Port = int(cmd.Int("port"))
	}

	r := &reporter.SystemReporter{
		Version: ver.Version,
		Factory: collector.NewDefaultFactory(),
	}

	s := server.New(
		server.WithName(appName),
		server.WithVersion(ver.Version),
		server.WithConfig(cfg),
		server.WithHandler(map[string]http.HandlerFunc{
			"/v1/report": r.HandleReport,
		}),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
