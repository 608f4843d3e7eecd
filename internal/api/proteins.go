package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ProteinHandler serves protein profiles.
type ProteinHandler struct {
	svc GraphService
	log *logrus.Logger
}

// NewProteinHandler creates a ProteinHandler.
func NewProteinHandler(svc GraphService, log *logrus.Logger) *ProteinHandler {
	return &ProteinHandler{svc: svc, log: log}
}

// Get handles GET /api/v1/proteins/:id.
func (h *ProteinHandler) Get(c *gin.Context) {
	nodeID := c.Param("id")
	if err := validatePathID(nodeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	profile, err := h.svc.ProteinProfile(c.Request.Context(), nodeID)
	if err != nil {
		respondLookupError(c, h.log, err, "getting protein profile")

		return
	}

	c.JSON(http.StatusOK, profile)
}
