package cli

import (
	"context"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/guardrail-dev/guardrail/pkg/api"
	"github.com/guardrail-dev/guardrail/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the validation API server",
		Description: `Starts a long-running HTTP server exposing the rule engine:

  POST /v1/validate   validate a {config, rules} document, returns the report
  GET  /health        liveness probe
  GET  /ready         readiness probe
  GET  /metrics       Prometheus metrics

# Examples

  guardrail serve --port 8080
  PORT=9090 guardrail serve`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Value: 8080,
				Usage: "Port to listen on (PORT env overrides)",
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Value: 100,
				Usage: "Maximum requests per second on API routes",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.DefaultConfig()
			if cmd.IsSet("port") {
				cfg.Port = int(cmd.Int("port"))
			}
			cfg.RateLimit = rate.Limit(cmd.Float("rate-limit"))

			return api.Serve(ctx, cfg)
		},
	}
}
