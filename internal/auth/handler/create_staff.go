package handler

import (
	"net/http"

	"staff-service/internal/apperr"
	"staff-service/internal/logger"
	"staff-service/internal/metrics"

	"github.com/gin-gonic/gin"
)

func (h *Handler) createStaff(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.rejectBody(c, err)
		return
	}

	// A body that cannot be read as a request is an internal error (500), not a 400.
	req, err := decodeRequest(body)
	if err != nil {
		h.rejectBody(c, err)
		return
	}

	logger.Info("staff provisioning requested", map[string]any{
		"email":            req.Email,
		"password_present": req.Password != "",
	})

	res, err := h.staff.Provision(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	logger.Info("staff user provisioned", map[string]any{
		"user_id": res.UserID,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"userId":  res.UserID,
	})
}

func (h *Handler) rejectBody(c *gin.Context, err error) {
	metrics.Provisions.WithLabelValues(metrics.OutcomeFailed).Inc()
	h.fail(c, apperr.Internal(err))
}
