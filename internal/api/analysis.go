package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AnalysisHandler serves the scoring endpoints.
type AnalysisHandler struct {
	svc           AnalysisService
	log           *logrus.Logger
	minConfidence float64
	topHubs       int
}

// NewAnalysisHandler creates an AnalysisHandler. minConfidence and topHubs are
// the defaults used when a request does not override them.
func NewAnalysisHandler(svc AnalysisService, log *logrus.Logger, minConfidence float64, topHubs int) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, log: log, minConfidence: minConfidence, topHubs: topHubs}
}

// Analyze handles GET /api/v1/analysis.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	minConfidence := h.minConfidence
	if raw, ok := c.GetQuery("min_confidence"); ok {
		v, err := parseConfidence(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

			return
		}
		minConfidence = v
	}

	top := h.topHubs
	if raw, ok := c.GetQuery("top"); ok {
		v, err := parseTop(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

			return
		}
		top = v
	}

	report, err := h.svc.Analyze(c.Request.Context(), minConfidence, top)
	if err != nil {
		h.log.WithError(err).Error("analysing network")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, report)
}

// Cardiotoxicity handles GET /api/v1/analysis/cardiotoxicity.
func (h *AnalysisHandler) Cardiotoxicity(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Cardiotoxicity(c.Request.Context()))
}

// DrugTargets handles GET /api/v1/analysis/drug-targets.
func (h *AnalysisHandler) DrugTargets(c *gin.Context) {
	targets := h.svc.DrugTargets(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"drug_targets": targets, "count": len(targets)})
}

// Pathways handles GET /api/v1/analysis/pathways.
func (h *AnalysisHandler) Pathways(c *gin.Context) {
	report, err := h.svc.Predict(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("predicting pathways")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, report)
}
