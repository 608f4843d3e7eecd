package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

// ReadInteractionsXLSX reads interaction rows from the first sheet of a
// workbook. The first row is treated as a header.
func ReadInteractionsXLSX(path string) ([]models.Interaction, Stats, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("opening XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []models.Interaction{}, Stats{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, Stats{}, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	if len(rows) <= 1 {
		return []models.Interaction{}, Stats{}, nil
	}

	out, stats := collectInteractions(rows[1:])

	return out, stats, nil
}
