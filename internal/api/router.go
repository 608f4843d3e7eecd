package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/GiulianoDami/MCL1-Regulator/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log           *logrus.Logger
	Graph         GraphService
	Analysis      AnalysisService
	CORSOrigins   []string
	Version       string
	MinConfidence float64
	TopHubs       int
}

// maxBodySize bounds request bodies; only subnetwork requests carry one.
const maxBodySize = 1 << 20

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.APIHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type"},
			MaxAge:           1 * time.Hour,
			AllowCredentials: false,
		}))
	}
	r.Use(middleware.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Graph, deps.Version)
	graph := NewGraphHandler(deps.Graph, log)
	proteins := NewProteinHandler(deps.Graph, log)
	analysis := NewAnalysisHandler(deps.Analysis, log, deps.MinConfidence, deps.TopHubs)

	api.GET("/health", health.Liveness)
	api.GET("/stats", graph.Stats)

	// Graph queries.
	api.GET("/graph/neighbors/:id", graph.Neighbors)
	api.GET("/graph/degree/:id", graph.Degree)
	api.GET("/graph/path/:from/:to", graph.Path)
	api.POST("/graph/subnetwork", graph.Subnetwork)

	// Proteins.
	api.GET("/proteins/:id", proteins.Get)

	// Analysis.
	api.GET("/analysis", analysis.Analyze)
	api.GET("/analysis/cardiotoxicity", analysis.Cardiotoxicity)
	api.GET("/analysis/drug-targets", analysis.DrugTargets)
	api.GET("/analysis/pathways", analysis.Pathways)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(r.Group("/api/v1"), deps)

	return r
}
