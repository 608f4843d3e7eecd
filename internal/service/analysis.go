package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/GiulianoDami/MCL1-Regulator/internal/domain"
	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
	"github.com/GiulianoDami/MCL1-Regulator/internal/network"
	"github.com/GiulianoDami/MCL1-Regulator/internal/scoring"
)

var _ domain.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs the scoring passes over a loaded network.
type AnalysisService struct {
	net      *network.Network
	cardio   *scoring.CardiotoxicityPredictor
	pathways *scoring.PathwayPredictor
	drugs    *scoring.DrugScorer
	log      *logrus.Logger
}

// NewAnalysisService creates an AnalysisService using cfg for every scoring pass.
func NewAnalysisService(net *network.Network, cfg scoring.Config, log *logrus.Logger) *AnalysisService {
	cardio := scoring.NewCardiotoxicityPredictor(cfg.Cardiotoxicity)

	return &AnalysisService{
		net:      net,
		cardio:   cardio,
		pathways: scoring.NewPathwayPredictor(cfg.Pathway),
		drugs:    scoring.NewDrugScorer(cfg.Drug, cardio),
		log:      log,
	}
}

// Analyze builds the full analysis report. The scoring passes only read the
// network and run concurrently.
func (s *AnalysisService) Analyze(ctx context.Context, minConfidence float64, topHubs int) (*models.AnalysisReport, error) {
	s.log.WithFields(logrus.Fields{
		"min_confidence": minConfidence,
		"top_hubs":       topHubs,
	}).Debug("analysis.analyze")

	report := &models.AnalysisReport{
		Stats:         s.net.Stats(),
		Hubs:          Hubs(s.net, topHubs),
		MinConfidence: minConfidence,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		report.CardiotoxicityRisk = s.cardio.Predict(s.net.Edges())
		return gctx.Err()
	})

	g.Go(func() error {
		report.ConfidentInteractions = s.net.FilterByConfidence(minConfidence)
		return gctx.Err()
	})

	g.Go(func() error {
		scores := s.pathways.Score(s.net)
		report.ActivePathways = len(s.pathways.Predict(scores.Activation, scores.Proteins).PredictedPathways)
		return gctx.Err()
	})

	g.Go(func() error {
		report.DrugTargets = s.drugs.Targets(s.net)
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysing network: %w", err)
	}

	for _, d := range report.DrugTargets {
		if d.SafeForCardiacUse && d.HighlySelective {
			report.SafeSelectiveCandidates++
		}
	}

	return report, nil
}

// Predict scores every pathway channel and keeps the active ones.
func (s *AnalysisService) Predict(ctx context.Context) (*models.PredictionReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores := s.pathways.Score(s.net)
	prediction := s.pathways.Predict(scores.Activation, scores.Proteins)

	s.log.WithFields(logrus.Fields{
		"run_id":     prediction.RunID,
		"pathways":   len(prediction.PredictedPathways),
		"confidence": prediction.ConfidenceScore,
	}).Debug("analysis.predict")

	return &models.PredictionReport{Prediction: prediction, ProteinScores: scores.ProteinScores}, nil
}

// Cardiotoxicity returns the overall risk and the risk of each interaction.
func (s *AnalysisService) Cardiotoxicity(_ context.Context) *models.CardiotoxicityReport {
	s.log.Debug("analysis.cardiotoxicity")

	edges := s.net.Edges()
	out := &models.CardiotoxicityReport{
		OverallRisk:  s.cardio.Predict(edges),
		Interactions: make([]models.InteractionRisk, 0, len(edges)),
	}

	for _, e := range edges {
		out.Interactions = append(out.Interactions, models.InteractionRisk{Interaction: e, Risk: s.cardio.InteractionRisk(e)})
	}

	return out
}

// DrugTargets returns drug target candidates from inhibition edges.
func (s *AnalysisService) DrugTargets(_ context.Context) []models.DrugTarget {
	s.log.Debug("analysis.drug_targets")

	return s.drugs.Targets(s.net)
}

// Hubs returns up to n nodes ranked by degree, ties broken by id.
func Hubs(net *network.Network, n int) []models.HubProtein {
	if n <= 0 {
		return []models.HubProtein{}
	}

	nodes := net.Nodes()
	hubs := make([]models.HubProtein, 0, len(nodes))

	for _, id := range nodes {
		hubs = append(hubs, models.HubProtein{ID: id, Degree: net.Degree(id)})
	}

	slices.SortStableFunc(hubs, func(a, b models.HubProtein) int {
		return cmp.Compare(b.Degree, a.Degree)
	})

	if len(hubs) > n {
		hubs = hubs[:n]
	}

	return hubs
}
