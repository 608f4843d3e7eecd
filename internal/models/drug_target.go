package models

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
