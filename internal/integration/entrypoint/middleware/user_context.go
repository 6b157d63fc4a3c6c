// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userIDKey is the gin context key holding the acting user's ID.
const userIDKey = "user_id"

// UserHeader is the header carrying the acting user's ID. Authentication
// happens upstream; this service only needs the user to be explicit on
// every request.
const UserHeader = "X-User-ID"

// UserContext parses the user header and stores the ID in the request
// context. Requests without a valid user ID are rejected.
func UserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": UserHeader + " header is required",
			})
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": UserHeader + " header must be a valid UUID",
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserIDFromContext retrieves the acting user's ID from the gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	return userID, ok
}
