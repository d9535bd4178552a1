package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinRequireAPIKey adapts the net/http APIKeyGuard to Gin.
func GinRequireAPIKey(guard *APIKeyGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		guard.RequireAPIKey(next).ServeHTTP(c.Writer, c.Request)

		// The guard already wrote the 401
		if c.Writer.Written() {
			c.Abort()
			return
		}
	}
}
