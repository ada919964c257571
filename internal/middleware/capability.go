package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// CapabilityLoader resolves the role and granted safes of a user.
type CapabilityLoader interface {
	GetCapability(ctx context.Context, userID string) (domain.Capability, error)
}

// LoadCapability resolves the authenticated user's capability once per request.
// It must run after AuthMiddleware.
func LoadCapability(loader CapabilityLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		capability, err := loader.GetCapability(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrUnauthorized) {
				logger.Warn("Authenticated user is unknown or inactive")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			logger.Error("Failed to load user capability", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load permissions"})
			return
		}

		c.Set(string(capabilityKey), capability)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), capabilityKey, capability))
		c.Next()
	}
}

// RequireAdmin rejects callers whose capability lacks the administrator role.
// It must run after LoadCapability.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		capability, ok := GetCapabilityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !capability.IsAdmin() {
			GetLoggerFromCtx(c.Request.Context()).Warn("Administrator role required")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrator role required"})
			return
		}
		c.Next()
	}
}
