package scoring

import "github.com/GiulianoDami/MCL1-Regulator/internal/models"

// DrugScorer proposes drug target candidates from inhibition edges.
type DrugScorer struct {
	cfg    DrugConfig
	cardio *CardiotoxicityPredictor
}

// NewDrugScorer creates a DrugScorer.
func NewDrugScorer(cfg DrugConfig, cardio *CardiotoxicityPredictor) *DrugScorer {
	return &DrugScorer{cfg: cfg, cardio: cardio}
}

// IsSafeForCardiacUse reports whether risk is below the safety threshold.
func (s *DrugScorer) IsSafeForCardiacUse(risk float64) bool {
	return risk < s.cfg.SafetyThreshold
}

// IsHighlySelective reports whether selectivity exceeds the selectivity threshold.
func (s *DrugScorer) IsHighlySelective(selectivity float64) bool {
	return selectivity > s.cfg.SelectivityThreshold
}

// Targets returns one candidate per distinct (inhibitor, target) pair of
// inhibition edges, in first-seen order. Parallel edges keep the highest weight
// as binding affinity. Selectivity is 1 over the number of distinct proteins
// the inhibitor acts on.
func (s *DrugScorer) Targets(g Graph) []models.DrugTarget {
	type pair struct{ src, dst string }

	index := make(map[pair]int)
	targetsOf := make(map[string]map[string]bool)
	out := make([]models.DrugTarget, 0)

	for _, e := range g.Edges() {
		if models.ParseInteractionType(e.Kind) != models.InteractionInhibition {
			continue
		}

		if targetsOf[e.Source] == nil {
			targetsOf[e.Source] = make(map[string]bool)
		}
		targetsOf[e.Source][e.Target] = true

		risk := s.cardio.InteractionRisk(e)
		key := pair{e.Source, e.Target}

		if i, ok := index[key]; ok {
			if e.Weight > out[i].BindingAffinity {
				out[i].BindingAffinity = e.Weight
				out[i].CardiotoxicityRisk = risk
			}
			continue
		}

		index[key] = len(out)
		out = append(out, models.DrugTarget{
			ID:                 e.Source,
			Name:               e.Source,
			TargetProtein:      e.Target,
			MechanismOfAction:  e.Kind,
			CardiotoxicityRisk: risk,
			BindingAffinity:    e.Weight,
		})
	}

	for i := range out {
		out[i].SelectivityScore = 1 / float64(len(targetsOf[out[i].ID]))
		out[i].SafeForCardiacUse = s.IsSafeForCardiacUse(out[i].CardiotoxicityRisk)
		out[i].HighlySelective = s.IsHighlySelective(out[i].SelectivityScore)
	}

	return out
}
