package server

import (
	"time"

	"golang.org/x/time/rate"
)

// contextKey is a private type for request context values.
type contextKey string

// contextKeyRequestID carries the per-request UUID assigned by the
// middleware chain.
const contextKeyRequestID contextKey = "request_id"

// Config holds server configuration
type Config struct {
	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Logging
	LogLevel string
}
