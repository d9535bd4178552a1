package handler

import (
	"context"
	"net/http"

	"staff-service/internal/apperr"
	"staff-service/internal/auth/staff"
	"staff-service/internal/logger"
	"staff-service/internal/middleware"
	"staff-service/internal/orphan"

	"github.com/gin-gonic/gin"
)

// Provisioner creates a staff identity and its profile row.
type Provisioner interface {
	Provision(ctx context.Context, req staff.Request) (*staff.Result, error)
}

// OrphanReader lists identities whose profile insert failed.
type OrphanReader interface {
	Get(ctx context.Context, userID string) (*orphan.Entry, error)
	List(ctx context.Context) ([]orphan.Entry, error)
}

type Handler struct {
	staff   Provisioner
	orphans OrphanReader
	guard   *middleware.APIKeyGuard
}

func NewHandler(
	provisioner Provisioner,
	orphans OrphanReader,
	guard *middleware.APIKeyGuard,
) *Handler {
	return &Handler{
		staff:   provisioner,
		orphans: orphans,
		guard:   guard,
	}
}

// RegisterRoutes mounts the create-staff endpoint and the operator
// orphan routes. Every method reaches create-staff; OPTIONS is answered
// by the CORS middleware.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	g := r.Group("",
		middleware.CORS(),
		middleware.GinRequireAPIKey(h.guard),
	)

	g.Any("/create-staff", h.createStaff)
	g.Any("/functions/v1/create-staff", h.createStaff)

	ops := r.Group("/orphans", middleware.GinRequireAPIKey(h.guard))
	ops.GET("", h.listOrphans)
	ops.GET("/:userId", h.getOrphan)

	for _, route := range r.Routes() {
		if route.Method == http.MethodPost || route.Method == http.MethodGet {
			logger.Info("route registered", map[string]any{
				"method": route.Method,
				"path":   route.Path,
			})
		}
	}
}

// fail maps err to its status and writes {"error": message}. Internal
// errors are logged with their cause.
func (h *Handler) fail(c *gin.Context, err error) {
	status := apperr.Status(err)

	if status >= http.StatusInternalServerError {
		logger.Error("internal error", map[string]any{
			"request_id": c.GetString("requestID"),
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		})
	}

	c.JSON(status, gin.H{
		"error": apperr.Message(err),
	})
}
