package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	gerrors "github.com/guardrail-dev/guardrail/pkg/errors"
)

type contextKey string

const contextKeyRequestID contextKey = "requestID"

// withMiddleware wraps an API handler with request ID assignment, request
// logging, and rate limiting.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		r = r.WithContext(ctx)
		w.Header().Set("X-Request-Id", requestID)

		if !s.limiter.Allow() {
			WriteError(w, r, http.StatusTooManyRequests, gerrors.ErrCodeRateLimitExceeded,
				"Rate limit exceeded", true, nil)
			return
		}

		start := time.Now()
		next(w, r)
		slog.Debug("request handled",
			"request_id", requestID,
			"path", r.URL.Path,
			"method", r.Method,
			"duration", time.Since(start),
		)
	}
}
