package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

// ReadInteractionsCSV parses source,target,kind,weight rows after one header line.
func ReadInteractionsCSV(r io.Reader) ([]models.Interaction, Stats, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("reading interactions: %w", err)
	}

	out, stats := collectInteractions(rows)

	return out, stats, nil
}

// ReadAttributesCSV parses node,key,value rows after one header line.
func ReadAttributesCSV(r io.Reader) ([]Attribute, Stats, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("reading attributes: %w", err)
	}

	stats := Stats{Rows: len(rows)}
	out := make([]Attribute, 0, len(rows))

	for _, row := range rows {
		a, ok := parseAttribute(row)
		if !ok {
			stats.Dropped++
			continue
		}

		stats.Kept++
		out = append(out, a)
	}

	return out, stats, nil
}

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// readRows splits every line after the first on commas. Each line stands on
// its own: quotes carry no meaning and blank lines are skipped. Only read
// failures from r are returned.
func readRows(r io.Reader) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]string
	header := true

	for sc.Scan() {
		if header {
			header = false
			continue
		}

		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rows = append(rows, strings.Split(line, ","))
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}
