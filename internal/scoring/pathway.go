package scoring

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

// PathwayScores are per-pathway inputs for prediction, derived from a network.
// Each distinct interaction kind is treated as one pathway channel.
type PathwayScores struct {
	Activation    map[string]float64               `json:"activation"`
	Proteins      map[string][]string              `json:"proteins"`
	ProteinScores map[string][]models.ProteinScore `json:"protein_scores"`
}

// PathwayPredictor selects active pathways.
type PathwayPredictor struct {
	cfg   PathwayConfig
	now   func() time.Time
	newID func() string
}

// NewPathwayPredictor creates a PathwayPredictor.
func NewPathwayPredictor(cfg PathwayConfig) *PathwayPredictor {
	return &PathwayPredictor{
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
}

// Score derives activation scores from g. A pathway's activation is the
// weighted average of the mean edge weight (InteractionWeight) and the share of
// network nodes the pathway touches (MetabolismWeight).
func (p *PathwayPredictor) Score(g Graph) PathwayScores {
	out := PathwayScores{
		Activation:    make(map[string]float64),
		Proteins:      make(map[string][]string),
		ProteinScores: make(map[string][]models.ProteinScore),
	}

	weights := make(map[string][]float64)
	perProtein := make(map[string]map[string][]float64)
	var kinds []string

	for _, e := range g.Edges() {
		if _, ok := weights[e.Kind]; !ok {
			kinds = append(kinds, e.Kind)
			perProtein[e.Kind] = make(map[string][]float64)
		}

		weights[e.Kind] = append(weights[e.Kind], e.Weight)
		perProtein[e.Kind][e.Source] = append(perProtein[e.Kind][e.Source], e.Weight)

		if e.Target != e.Source {
			perProtein[e.Kind][e.Target] = append(perProtein[e.Kind][e.Target], e.Weight)
		}
	}

	total := p.cfg.InteractionWeight + p.cfg.MetabolismWeight
	nodes := g.NodeCount()

	for _, kind := range kinds {
		coverage := 0.0
		if nodes > 0 {
			coverage = float64(len(perProtein[kind])) / float64(nodes)
		}

		activation := 0.0
		if total > 0 {
			activation = (p.cfg.InteractionWeight*stat.Mean(weights[kind], nil) + p.cfg.MetabolismWeight*coverage) / total
		}

		out.Activation[kind] = clamp01(activation)

		scores := make([]models.ProteinScore, 0, len(perProtein[kind]))
		proteins := make([]string, 0, len(perProtein[kind]))

		for protein, ws := range perProtein[kind] {
			scores = append(scores, models.ProteinScore{Protein: protein, Score: stat.Mean(ws, nil)})
			proteins = append(proteins, protein)
		}

		slices.SortFunc(scores, func(a, b models.ProteinScore) int {
			if c := cmp.Compare(b.Score, a.Score); c != 0 {
				return c
			}
			return cmp.Compare(a.Protein, b.Protein)
		})
		slices.Sort(proteins)

		out.ProteinScores[kind] = scores
		out.Proteins[kind] = proteins
	}

	return out
}

// Predict keeps the pathways whose score exceeds ActivationThreshold, ordered
// by pathway id. The confidence is the mean score of the kept pathways, or 0
// when none pass.
func (p *PathwayPredictor) Predict(metabolic map[string]float64, proteins map[string][]string) models.PathwayPrediction {
	ids := make([]string, 0, len(metabolic))
	for id := range metabolic {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	pathways := make([]models.MetabolicPathway, 0)
	var kept []float64

	for _, id := range ids {
		score := metabolic[id]
		if score <= p.cfg.ActivationThreshold {
			continue
		}

		associated := append([]string{}, proteins[id]...)

		pathways = append(pathways, models.MetabolicPathway{
			ID:                 id,
			Name:               "Pathway_" + id,
			ActivationScore:    score,
			AssociatedProteins: associated,
		})
		kept = append(kept, score)
	}

	confidence := 0.0
	if len(kept) > 0 {
		confidence = stat.Mean(kept, nil)
	}

	return models.PathwayPrediction{
		RunID:             p.newID(),
		PredictedPathways: pathways,
		ConfidenceScore:   confidence,
		PredictedAt:       p.now(),
	}
}
