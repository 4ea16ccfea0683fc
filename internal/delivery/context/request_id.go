// Package context carries the request ID and request-scoped logger across the
// HTTP API, the push worker and the catalog services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// MaxRequestIDLength matches sku_events.request_id, where every mutation's request ID ends up.
	MaxRequestIDLength = 64
)

// SanitizeRequestID returns id if it is usable as a request ID, otherwise "".
// Accepted IDs are at most MaxRequestIDLength bytes of visible ASCII, so they are
// safe in log lines, Pub/Sub attributes and the event log.
func SanitizeRequestID(id string) string {
	if id == "" || len(id) > MaxRequestIDLength {
		return ""
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return ""
		}
	}

	return id
}

// NewRequestID generates a request ID.
func NewRequestID() string {
	return uuid.New().String()
}

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return NewRequestID()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithRequestScope stores the request ID and a logger tagged with it.
func WithRequestScope(ctx context.Context, requestID string, logger *slog.Logger) (context.Context, *slog.Logger) {
	reqLogger := logger.With(slog.String("request_id", requestID))

	return WithLogger(WithRequestID(ctx, requestID), reqLogger), reqLogger
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
