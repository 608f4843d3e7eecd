package models

// HubProtein is a node ranked by degree.
type HubProtein struct {
	ID     string `json:"id"`
	Degree int    `json:"degree"`
}

// AnalysisReport is the result of analysing a loaded network.
type AnalysisReport struct {
	Stats                   NetworkStats  `json:"stats"`
	Hubs                    []HubProtein  `json:"hubs"`
	CardiotoxicityRisk      float64       `json:"cardiotoxicity_risk"`
	MinConfidence           float64       `json:"min_confidence"`
	ConfidentInteractions   []Interaction `json:"confident_interactions"`
	ActivePathways          int           `json:"active_pathways"`
	DrugTargets             []DrugTarget  `json:"drug_targets"`
	SafeSelectiveCandidates int           `json:"safe_selective_candidates"`
}

// PredictionReport bundles a pathway prediction with per-protein scores.
type PredictionReport struct {
	Prediction    PathwayPrediction         `json:"prediction"`
	ProteinScores map[string][]ProteinScore `json:"protein_scores"`
}

// InteractionRisk is the cardiotoxicity risk contributed by one interaction.
type InteractionRisk struct {
	Interaction
	Risk float64 `json:"risk"`
}

// CardiotoxicityReport breaks the overall risk of a network down per interaction.
type CardiotoxicityReport struct {
	OverallRisk  float64           `json:"overall_risk"`
	Interactions []InteractionRisk `json:"interactions"`
}
