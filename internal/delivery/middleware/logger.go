package middleware

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Query parameters whose values never reach the access log.
var redactedQueryKeys = map[string]struct{}{
	"password":     {},
	"token":        {},
	"access_token": {},
}

// LoggerMiddleware logs one access line per request when debug is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.String("time", start.Format(time.RFC3339)),
	}

	// Matched route template, e.g. /api/skus/:id
	if route := c.Path(); route != "" {
		fields = append(fields, slog.String("route", route))
	}
	if query := redactQuery(req.URL.RawQuery); query != "" {
		fields = append(fields, slog.String("query", query))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}

// redactQuery masks credential values. Unparsable queries are dropped.
func redactQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return ""
	}

	redacted := false
	for key := range values {
		if _, ok := redactedQueryKeys[strings.ToLower(key)]; ok {
			values[key] = []string{"REDACTED"}
			redacted = true
		}
	}
	if !redacted {
		return rawQuery
	}

	return values.Encode()
}
