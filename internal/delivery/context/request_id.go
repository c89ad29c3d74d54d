// Package context carries per-request values (request ID, request-scoped
// logger) across the delivery boundary into the service layer.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header the request ID is read from and
// echoed back on.
const HeaderXRequestID = "X-Request-Id"

// echoKeyRequestID is the echo.Context key; echo only accepts string keys.
const echoKeyRequestID = "request_id"

// Unexported struct keys keep context.Context values collision-free.
type requestIDKey struct{}
type loggerKey struct{}

// SetRequestID stores the request ID on the echo context so the response
// path can echo it back.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// RequestIDFromEcho returns the request ID stored on the echo context, or
// an empty string when none was set.
func RequestIDFromEcho(c echo.Context) string {
	id, _ := c.Get(echoKeyRequestID).(string)

	return id
}

// WithRequestID returns a child context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID carried by ctx, or an empty string.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// WithLogger returns a child context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLoggerOrDefault returns the request-scoped logger carried by ctx,
// falling back to the given logger outside a request (workers, startup).
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
