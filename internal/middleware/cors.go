package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "content-type, x-api-key",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
}

// CORS sets the fixed CORS headers on every response and answers
// preflight requests with 204 before any other processing.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for k, v := range corsHeaders {
			h.Set(k, v)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
