package scoring

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

// CardiotoxicityPredictor estimates cardiac risk from interactions.
type CardiotoxicityPredictor struct {
	cfg CardiotoxicityConfig
}

// NewCardiotoxicityPredictor creates a CardiotoxicityPredictor.
func NewCardiotoxicityPredictor(cfg CardiotoxicityConfig) *CardiotoxicityPredictor {
	return &CardiotoxicityPredictor{cfg: cfg}
}

// BaseScore returns the configured base risk of a protein, or the default.
func (p *CardiotoxicityPredictor) BaseScore(protein string) float64 {
	if v, ok := p.cfg.BaseScores[protein]; ok {
		return v
	}

	return p.cfg.DefaultScore
}

// InteractionRisk scores one interaction: the riskier endpoint's base score,
// scaled by the interaction weight through WeightFactor. The result is clamped
// to [0,1].
func (p *CardiotoxicityPredictor) InteractionRisk(e models.Interaction) float64 {
	base := math.Max(p.BaseScore(e.Source), p.BaseScore(e.Target))
	scale := 1 - p.cfg.WeightFactor + p.cfg.WeightFactor*e.Weight

	return clamp01(base * scale)
}

// Predict returns the mean interaction risk. An empty edge list scores 0.
func (p *CardiotoxicityPredictor) Predict(edges []models.Interaction) float64 {
	if len(edges) == 0 {
		return 0
	}

	risks := make([]float64, len(edges))
	for i, e := range edges {
		risks[i] = p.InteractionRisk(e)
	}

	return stat.Mean(risks, nil)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
