package api_test

import (
	"context"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

// mockGraphService implements api.GraphService for testing.
type mockGraphService struct {
	statsFn      func(ctx context.Context) models.NetworkStats
	neighborsFn  func(ctx context.Context, nodeID string) (*models.NeighborResult, error)
	degreeFn     func(ctx context.Context, nodeID string) (int, error)
	pathFn       func(ctx context.Context, fromID, toID string) (*models.PathResult, error)
	subnetworkFn func(ctx context.Context, req models.SubnetworkRequest) (*models.SubnetworkResult, error)
	profileFn    func(ctx context.Context, nodeID string) (*models.Protein, error)
}

func (m *mockGraphService) Stats(ctx context.Context) models.NetworkStats {
	if m.statsFn == nil {
		return models.NetworkStats{}
	}
	return m.statsFn(ctx)
}

func (m *mockGraphService) Neighbors(ctx context.Context, nodeID string) (*models.NeighborResult, error) {
	return m.neighborsFn(ctx, nodeID)
}

func (m *mockGraphService) Degree(ctx context.Context, nodeID string) (int, error) {
	return m.degreeFn(ctx, nodeID)
}

func (m *mockGraphService) ShortestPath(ctx context.Context, fromID, toID string) (*models.PathResult, error) {
	return m.pathFn(ctx, fromID, toID)
}

func (m *mockGraphService) Subnetwork(ctx context.Context, req models.SubnetworkRequest) (*models.SubnetworkResult, error) {
	return m.subnetworkFn(ctx, req)
}

func (m *mockGraphService) Attributes(_ context.Context, _ string) map[string]string {
	return map[string]string{}
}

func (m *mockGraphService) ProteinProfile(ctx context.Context, nodeID string) (*models.Protein, error) {
	return m.profileFn(ctx, nodeID)
}

func (m *mockGraphService) FilterByConfidence(_ context.Context, _ float64) []models.Interaction {
	return nil
}

// mockAnalysisService implements api.AnalysisService for testing.
type mockAnalysisService struct {
	analyzeFn func(ctx context.Context, minConfidence float64, topHubs int) (*models.AnalysisReport, error)
	predictFn func(ctx context.Context) (*models.PredictionReport, error)
	cardioFn  func(ctx context.Context) *models.CardiotoxicityReport
	drugsFn   func(ctx context.Context) []models.DrugTarget
}

func (m *mockAnalysisService) Analyze(ctx context.Context, minConfidence float64, topHubs int) (*models.AnalysisReport, error) {
	return m.analyzeFn(ctx, minConfidence, topHubs)
}

func (m *mockAnalysisService) Predict(ctx context.Context) (*models.PredictionReport, error) {
	return m.predictFn(ctx)
}

func (m *mockAnalysisService) Cardiotoxicity(ctx context.Context) *models.CardiotoxicityReport {
	return m.cardioFn(ctx)
}

func (m *mockAnalysisService) DrugTargets(ctx context.Context) []models.DrugTarget {
	return m.drugsFn(ctx)
}
