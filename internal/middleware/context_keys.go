package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for request-context keys.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	userIDKey     = contextKey("userID")
	capabilityKey = contextKey("capability")
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It returns the default logger if none is present, e.g. in CLI commands and tests.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
			return userID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetCapabilityFromContext retrieves the caller's capability loaded by LoadCapability.
func GetCapabilityFromContext(c *gin.Context) (domain.Capability, bool) {
	if val, exists := c.Get(string(capabilityKey)); exists {
		if capability, ok := val.(domain.Capability); ok {
			return capability, true
		}
	}
	if capability, ok := c.Request.Context().Value(capabilityKey).(domain.Capability); ok {
		return capability, true
	}
	return domain.Capability{}, false
}
