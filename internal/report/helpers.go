package report

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

func jsonIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling json: %w", err)
	}

	return data, nil
}

// nonNilScores replaces nil score lists so they encode as [] instead of null.
func nonNilScores(in map[string][]models.ProteinScore) map[string][]models.ProteinScore {
	out := make(map[string][]models.ProteinScore, len(in))

	for pathway, scores := range in {
		if scores == nil {
			scores = []models.ProteinScore{}
		}
		out[pathway] = scores
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
