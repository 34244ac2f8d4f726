// Package api wires the validation service: it exposes the rule engine over
// HTTP for CI systems that prefer a long-running endpoint to a local binary.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/guardrail-dev/guardrail/pkg/logging"
	"github.com/guardrail-dev/guardrail/pkg/server"
	"github.com/guardrail-dev/guardrail/pkg/validator"
	"github.com/guardrail-dev/guardrail/pkg/version"
)

const name = "guardrail-api-server"

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve(ctx context.Context, cfg *server.Config) error {
	logging.SetDefaultStructuredLogger(name, version.Version)
	slog.Info("starting",
		"name", name,
		"version", version.Version,
		"commit", version.Commit,
		"date", version.Date,
	)

	v := validator.New(validator.WithVersion(version.Version))

	r := map[string]http.HandlerFunc{
		"/v1/validate": v.HandleValidate,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version.Version),
		server.WithConfig(cfg),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
