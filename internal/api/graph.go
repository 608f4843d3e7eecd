package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

// GraphHandler serves graph query endpoints.
type GraphHandler struct {
	svc GraphService
	log *logrus.Logger
}

// NewGraphHandler creates a GraphHandler with the given service and logger.
func NewGraphHandler(svc GraphService, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{svc: svc, log: log}
}

// Stats handles GET /api/v1/stats.
func (h *GraphHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats(c.Request.Context()))
}

// Neighbors handles GET /api/v1/graph/neighbors/:id.
func (h *GraphHandler) Neighbors(c *gin.Context) {
	nodeID := c.Param("id")
	if err := validatePathID(nodeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	result, err := h.svc.Neighbors(c.Request.Context(), nodeID)
	if err != nil {
		respondLookupError(c, h.log, err, "getting neighbors")

		return
	}

	c.JSON(http.StatusOK, result)
}

// Degree handles GET /api/v1/graph/degree/:id.
func (h *GraphHandler) Degree(c *gin.Context) {
	nodeID := c.Param("id")
	if err := validatePathID(nodeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	degree, err := h.svc.Degree(c.Request.Context(), nodeID)
	if err != nil {
		respondLookupError(c, h.log, err, "getting degree")

		return
	}

	c.JSON(http.StatusOK, gin.H{"node": nodeID, "degree": degree})
}

// Path handles GET /api/v1/graph/path/:from/:to.
func (h *GraphHandler) Path(c *gin.Context) {
	from := c.Param("from")
	to := c.Param("to")

	if err := validatePathID(from); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid from: "+err.Error())

		return
	}

	if err := validatePathID(to); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid to: "+err.Error())

		return
	}

	result, err := h.svc.ShortestPath(c.Request.Context(), from, to)
	if err != nil {
		h.log.WithError(err).Error("finding shortest path")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	if !result.Found {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, models.ErrNoPath.Error())

		return
	}

	c.JSON(http.StatusOK, result)
}

// Subnetwork handles POST /api/v1/graph/subnetwork.
func (h *GraphHandler) Subnetwork(c *gin.Context) {
	var req models.SubnetworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	result, err := h.svc.Subnetwork(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRequest) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("extracting subnetwork")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, result)
}

// respondLookupError maps ErrNodeNotFound to 404 and anything else to 500.
func respondLookupError(c *gin.Context, log *logrus.Logger, err error, op string) {
	if errors.Is(err, models.ErrNodeNotFound) {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")

		return
	}

	log.WithError(err).Error(op)
	respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
}
