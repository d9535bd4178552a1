package middleware

import (
	"crypto/subtle"
	"net/http"

	"staff-service/internal/apperr"
	"staff-service/internal/logger"
	"staff-service/internal/metrics"
)

const APIKeyHeader = "x-api-key"

type APIKeyGuard struct {
	secret []byte
}

func NewAPIKeyGuard(secret string) *APIKeyGuard {
	return &APIKeyGuard{secret: []byte(secret)}
}

// Allowed reports whether key matches the configured secret byte for byte.
// An unset secret matches nothing, not even a missing key.
func (g *APIKeyGuard) Allowed(key string) bool {
	if len(g.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), g.secret) == 1
}

func (g *APIKeyGuard) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(APIKeyHeader)

		if !g.Allowed(key) {
			logger.Warn("api key rejected", map[string]any{
				"key_present":    key != "",
				"secret_present": len(g.secret) > 0,
				"path":           r.URL.Path,
			})
			metrics.Provisions.WithLabelValues(metrics.OutcomeUnauthorized).Inc()
			apperr.WriteJSON(w, apperr.Unauthorized())
			return
		}

		next.ServeHTTP(w, r)
	})
}
