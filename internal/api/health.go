// Package api provides HTTP handlers for the interactome query server.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	graph     GraphService
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(graph GraphService, version string) *HealthHandler {
	return &HealthHandler{graph: graph, version: version, startTime: time.Now()}
}

// healthResponse is the JSON payload returned by the liveness endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Nodes         int     `json:"nodes"`
	Edges         int     `json:"edges"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	stats := h.graph.Stats(c.Request.Context())

	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       h.version,
		Nodes:         stats.NodeCount,
		Edges:         stats.EdgeCount,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}
