package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

// Sheet names used in prediction workbooks.
const (
	SheetPathways      = "Pathways"
	SheetProteinScores = "Protein Scores"
	SheetRun           = "Run"
)

// WritePrediction writes r to path, as a workbook when the extension is .xlsx
// and as indented JSON otherwise.
func WritePrediction(path string, r *models.PredictionReport) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return WriteWorkbook(path, r)
	}

	data, err := PredictionJSON(r)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing prediction file: %w", err)
	}

	return nil
}

type predictionDocument struct {
	Prediction    models.PathwayPrediction         `json:"prediction"`
	ProteinScores map[string][]models.ProteinScore `json:"protein_scores"`
}

// PredictionJSON returns the structured output of a prediction run: the
// prediction itself plus the per-pathway protein scores.
func PredictionJSON(r *models.PredictionReport) ([]byte, error) {
	doc := predictionDocument{
		Prediction:    r.Prediction,
		ProteinScores: nonNilScores(r.ProteinScores),
	}

	if doc.Prediction.PredictedPathways == nil {
		doc.Prediction.PredictedPathways = []models.MetabolicPathway{}
	}

	return jsonIndent(doc)
}

// WriteWorkbook writes r as an XLSX workbook with one sheet per view.
func WriteWorkbook(path string, r *models.PredictionReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetPathways); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for _, name := range []string{SheetProteinScores, SheetRun} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %q: %w", name, err)
		}
	}

	pathways := [][]any{{"ID", "Name", "Activation Score", "Associated Proteins"}}
	for _, p := range r.Prediction.PredictedPathways {
		pathways = append(pathways, []any{p.ID, p.Name, p.ActivationScore, strings.Join(p.AssociatedProteins, ";")})
	}

	scores := [][]any{{"Pathway", "Protein", "Score"}}
	for _, pathway := range sortedKeys(r.ProteinScores) {
		for _, s := range r.ProteinScores[pathway] {
			scores = append(scores, []any{pathway, s.Protein, s.Score})
		}
	}

	run := [][]any{
		{"Run ID", r.Prediction.RunID},
		{"Predicted At", r.Prediction.PredictedAt.Format("2006-01-02T15:04:05Z07:00")},
		{"Confidence", r.Prediction.ConfidenceScore},
		{"Pathways", len(r.Prediction.PredictedPathways)},
	}

	for sheet, rows := range map[string][][]any{SheetPathways: pathways, SheetProteinScores: scores, SheetRun: run} {
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+1, err)
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}

	return nil
}
