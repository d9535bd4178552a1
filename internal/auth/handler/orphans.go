package handler

import (
	"net/http"

	"staff-service/internal/apperr"
	"staff-service/internal/orphan"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listOrphans(c *gin.Context) {
	entries, err := h.orphans.List(c.Request.Context())
	if err != nil {
		h.fail(c, apperr.Internal(err))
		return
	}

	if entries == nil {
		entries = []orphan.Entry{}
	}

	c.JSON(http.StatusOK, gin.H{
		"orphans": entries,
	})
}

func (h *Handler) getOrphan(c *gin.Context) {
	entry, err := h.orphans.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.fail(c, apperr.Internal(err))
		return
	}

	if entry == nil {
		h.fail(c, apperr.NotFound("orphan not found"))
		return
	}

	c.JSON(http.StatusOK, entry)
}
