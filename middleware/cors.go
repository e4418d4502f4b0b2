package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS allows the frontend origin(s) to call the API. allowed is a
// comma-separated origin list, or "*" for any. Entries match by exact
// equality; a substring of a configured origin is not enough.
func CORS(allowed string) gin.HandlerFunc {
	allowAll := allowed == "*"
	var origins []string
	for _, entry := range strings.Split(allowed, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			origins = append(origins, entry)
		}
	}

	originAllowed := func(origin string) bool {
		if allowAll {
			return true
		}
		for _, entry := range origins {
			if entry == origin {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
