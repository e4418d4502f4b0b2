// Package middleware provides the Gin middleware shared by the API
// routes: the JWT gate, per-client rate limiting, CORS and request
// logging.
package middleware

import (
	"net/http"
	"strings"

	"github.com/rishindramani/awesome-referrals-sub000/auth"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key holding the authenticated user id.
const userIDKey = "user_id"

// UserID returns the authenticated user's id, or "" for anonymous
// requests that passed through OptionalAuth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(tokens, c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "missing or invalid token",
			})
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth resolves the caller's identity when a valid token is
// present and lets the request through anonymously otherwise. The
// catalog endpoints use it for the isSaved annotation.
func OptionalAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(tokens, c); ok {
			c.Set(userIDKey, claims.UserID)
		}
		c.Next()
	}
}

func bearerClaims(tokens *auth.TokenManager, c *gin.Context) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	claims, err := tokens.VerifyToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}
