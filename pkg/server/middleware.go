package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	zyerrors "github.com/foelkdavid/zyfetch/pkg/errors"
)

// withMiddleware wraps an API handler with the standard chain: request
// ID assignment, API version negotiation, rate limiting, and request
// logging. System routes (health, ready, metrics) stay outside it.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		r = r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, requestID))
		w.Header().Set("X-Request-Id", requestID)

		apiVersion := negotiateAPIVersion(r)
		w.Header().Set("X-Api-Version", apiVersion)

		if !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			WriteError(w, r, http.StatusTooManyRequests, zyerrors.ErrCodeRateLimitExceeded,
				"rate limit exceeded", true, nil)
			return
		}

		start := time.Now()
		next(w, r)

		slog.Debug("handled request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", requestID),
			slog.String("api_version", apiVersion),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
