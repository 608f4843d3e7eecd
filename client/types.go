package client

import "time"

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Nodes         int     `json:"nodes"`
	Edges         int     `json:"edges"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Stats summarises the served network.
type Stats struct {
	NodeCount       int      `json:"node_count"`
	EdgeCount       int      `json:"edge_count"`
	AttributedNodes int      `json:"attributed_nodes"`
	Kinds           []string `json:"kinds"`
}

// Interaction is one edge of the network.
type Interaction struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Kind   string  `json:"kind"`
	Weight float64 `json:"weight"`
}

// NeighborResult lists the partners of a protein.
type NeighborResult struct {
	Node      string   `json:"node"`
	Neighbors []string `json:"neighbors"`
	Degree    int      `json:"degree"`
}

// PathResult is a shortest path between two proteins.
type PathResult struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Path  []string `json:"path"`
	Found bool     `json:"found"`
	Hops  int      `json:"hops"`
}

// SubnetworkResult is the subnetwork reachable from a seed set.
type SubnetworkResult struct {
	Seeds      []string                     `json:"seeds"`
	Nodes      []string                     `json:"nodes"`
	Edges      []Interaction                `json:"edges"`
	Attributes map[string]map[string]string `json:"attributes,omitempty"`
}

// PartnerInteraction is one interaction seen from a protein's side.
type PartnerInteraction struct {
	PartnerID       string  `json:"partner_id"`
	PartnerName     string  `json:"partner_name,omitempty"`
	BindingAffinity float64 `json:"binding_affinity"`
	Type            string  `json:"interaction_type"`
	Evidence        string  `json:"evidence"`
}

// Protein is a protein profile.
type Protein struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Attributes   map[string]string    `json:"attributes"`
	Degree       int                  `json:"degree"`
	Interactions []PartnerInteraction `json:"interactions"`
}

// HubProtein is a protein ranked by degree.
type HubProtein struct {
	ID     string `json:"id"`
	Degree int    `json:"degree"`
}

// DrugTarget is a candidate compound acting on a target protein.
type DrugTarget struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	TargetProtein      string  `json:"target_protein"`
	MechanismOfAction  string  `json:"mechanism_of_action"`
	CardiotoxicityRisk float64 `json:"cardiotoxicity_risk"`
	BindingAffinity    float64 `json:"binding_affinity"`
	SelectivityScore   float64 `json:"selectivity_score"`
	SafeForCardiacUse  bool    `json:"safe_for_cardiac_use"`
	HighlySelective    bool    `json:"highly_selective"`
}

// AnalysisReport is the full network analysis.
type AnalysisReport struct {
	Stats                   Stats         `json:"stats"`
	Hubs                    []HubProtein  `json:"hubs"`
	CardiotoxicityRisk      float64       `json:"cardiotoxicity_risk"`
	MinConfidence           float64       `json:"min_confidence"`
	ConfidentInteractions   []Interaction `json:"confident_interactions"`
	ActivePathways          int           `json:"active_pathways"`
	DrugTargets             []DrugTarget  `json:"drug_targets"`
	SafeSelectiveCandidates int           `json:"safe_selective_candidates"`
}

// InteractionRisk is the risk contributed by one interaction.
type InteractionRisk struct {
	Interaction
	Risk float64 `json:"risk"`
}

// CardiotoxicityReport breaks the overall risk down per interaction.
type CardiotoxicityReport struct {
	OverallRisk  float64           `json:"overall_risk"`
	Interactions []InteractionRisk `json:"interactions"`
}

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

// PredictionReport is a pathway prediction with per-protein scores.
type PredictionReport struct {
	Prediction    PathwayPrediction         `json:"prediction"`
	ProteinScores map[string][]ProteinScore `json:"protein_scores"`
}
