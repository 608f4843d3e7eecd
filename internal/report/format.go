// Package report renders analysis and prediction results as text, JSON and
// spreadsheets.
package report

import (
	"fmt"
	"strings"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

const interactionsTitle = "Protein Interactions:"

// FormatInteractions renders one "A <-> B (score: 0.900)" line per interaction.
func FormatInteractions(interactions []models.Interaction) string {
	var b strings.Builder

	b.WriteString(interactionsTitle + "\n")
	b.WriteString(strings.Repeat("=", len(interactionsTitle)) + "\n")

	for _, i := range interactions {
		fmt.Fprintf(&b, "%s <-> %s (score: %.3f)\n", i.Source, i.Target, i.Weight)
	}

	return b.String()
}

// PathwayPredictionsJSON serialises per-pathway protein scores as
// {"pathway": [{"protein": "...", "score": 0.9}]}.
func PathwayPredictionsJSON(predictions map[string][]models.ProteinScore) ([]byte, error) {
	return jsonIndent(nonNilScores(predictions))
}

// FormatSummary renders the analysis summary block.
func FormatSummary(totalInteractions, activePathways, predictedDrugs int) string {
	return fmt.Sprintf(`Analysis Summary:
=================
Total Interactions: %d
Active Pathways: %d
Predicted Drug Targets: %d
`, totalInteractions, activePathways, predictedDrugs)
}

// FormatAnalysis renders a full text report for an analysis run.
func FormatAnalysis(r *models.AnalysisReport) string {
	var b strings.Builder

	b.WriteString(FormatSummary(r.Stats.EdgeCount, r.ActivePathways, len(r.DrugTargets)))
	fmt.Fprintf(&b, "Proteins: %d\n", r.Stats.NodeCount)
	fmt.Fprintf(&b, "Interaction Kinds: %s\n", strings.Join(r.Stats.Kinds, ", "))
	fmt.Fprintf(&b, "Cardiotoxicity Risk: %.3f\n", r.CardiotoxicityRisk)
	fmt.Fprintf(&b, "Safe and Selective Candidates: %d\n", r.SafeSelectiveCandidates)

	if len(r.Hubs) > 0 {
		b.WriteString("\nHub Proteins:\n")
		for _, h := range r.Hubs {
			fmt.Fprintf(&b, "  %-12s degree %d\n", h.ID, h.Degree)
		}
	}

	b.WriteString("\n")
	if r.MinConfidence > 0 {
		fmt.Fprintf(&b, "Interactions with confidence >= %.3f\n", r.MinConfidence)
	}
	b.WriteString(FormatInteractions(r.ConfidentInteractions))

	return b.String()
}
