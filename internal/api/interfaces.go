package api

import "github.com/GiulianoDami/MCL1-Regulator/internal/domain"

// GraphService is the graph query surface used by GraphHandler, ProteinHandler and HealthHandler.
type GraphService = domain.GraphService

// AnalysisService is the scoring surface used by AnalysisHandler.
type AnalysisService = domain.AnalysisService
