package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Constants for context keys and headers
const (
	ContextUserIDKey = "userID"
	UserIDHeader     = "X-User-Id"
)

// UserIDMiddleware extracts the caller-supplied user identifier from the
// X-User-Id header and stores it in the request context. The identifier is
// trusted as-is; there is no authentication in this layer.
func UserIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			abortWithError(c, http.StatusUnauthorized, "User ID is missing. X-User-Id header required.")
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper function to get User ID from context (used by handlers)
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return idStr, nil
}
