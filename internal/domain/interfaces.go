// Package domain defines the service interfaces shared by the HTTP API and
// the interactive shell. Consumers should depend on these interfaces rather
// than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

// GraphService defines the read-only graph queries over a loaded network.
type GraphService interface {
	Stats(ctx context.Context) models.NetworkStats
	Neighbors(ctx context.Context, nodeID string) (*models.NeighborResult, error)
	Degree(ctx context.Context, nodeID string) (int, error)
	ShortestPath(ctx context.Context, fromID, toID string) (*models.PathResult, error)
	Subnetwork(ctx context.Context, req models.SubnetworkRequest) (*models.SubnetworkResult, error)
	Attributes(ctx context.Context, nodeID string) map[string]string
	ProteinProfile(ctx context.Context, nodeID string) (*models.Protein, error)
	FilterByConfidence(ctx context.Context, minScore float64) []models.Interaction
}

// AnalysisService defines the scoring passes over a loaded network.
type AnalysisService interface {
	Analyze(ctx context.Context, minConfidence float64, topHubs int) (*models.AnalysisReport, error)
	Predict(ctx context.Context) (*models.PredictionReport, error)
	Cardiotoxicity(ctx context.Context) *models.CardiotoxicityReport
	DrugTargets(ctx context.Context) []models.DrugTarget
}
