package models

import "time"

// MetabolicPathway is a pathway predicted to be active.
type MetabolicPathway struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	ActivationScore    float64  `json:"activation_score"`
	AssociatedProteins []string `json:"associated_proteins"`
}

// PathwayPrediction is the outcome of one prediction run.
type PathwayPrediction struct {
	RunID             string             `json:"run_id"`
	PredictedPathways []MetabolicPathway `json:"predicted_pathways"`
	ConfidenceScore   float64            `json:"confidence_score"`
	PredictedAt       time.Time          `json:"prediction_timestamp"`
}

// ProteinScore pairs a protein with a score inside a pathway.
type ProteinScore struct {
	Protein string  `json:"protein"`
	Score   float64 `json:"score"`
}
