package middleware

import "github.com/gin-gonic/gin"

// contextKey is a custom type for context keys. Using a custom type prevents
// collisions with other packages storing values in the same context.
type contextKey string

const (
	// loggerCtxKey stores the request-scoped logger in the standard context.
	loggerCtxKey = contextKey("logger")

	// userIDKey stores the authenticated user's ID.
	userIDKey = contextKey("userID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}
