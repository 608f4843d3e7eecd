// Package loader reads tabular interaction and attribute data into a network.
//
// Malformed rows never fail a load: rows with too few fields are dropped and
// weights that do not parse default to 0. Only failures to open or read the
// source are returned as errors.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
	"github.com/GiulianoDami/MCL1-Regulator/internal/network"
)

// Minimum field counts per row kind.
const (
	interactionFields = 4
	attributeFields   = 3
)

// ErrUnsupportedFormat is returned for input files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Stats describes what happened to the data rows of one source. The header
// row is not counted.
type Stats struct {
	Rows             int `json:"rows"`
	Kept             int `json:"kept"`
	Dropped          int `json:"dropped"`
	DefaultedWeights int `json:"defaulted_weights"`
}

// Attribute is one node,key,value row.
type Attribute struct {
	Node  string
	Key   string
	Value string
}

// LoadInteractionsFile reads interactions from a .csv (or any text) file, or
// from the first sheet of a .xlsx workbook.
func LoadInteractionsFile(path string) ([]models.Interaction, Stats, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadInteractionsXLSX(path)
	case ".xls":
		return nil, Stats{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("opening interactions file: %w", err)
	}
	defer f.Close()

	return ReadInteractionsCSV(f)
}

// LoadAttributesFile reads node attributes from a CSV file.
func LoadAttributesFile(path string) ([]Attribute, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("opening attributes file: %w", err)
	}
	defer f.Close()

	return ReadAttributesCSV(f)
}

// BuildNetwork inserts interactions and attributes, in order, into a new network.
func BuildNetwork(interactions []models.Interaction, attributes []Attribute) *network.Network {
	n := network.New()

	for _, i := range interactions {
		n.AddInteraction(i)
	}

	for _, a := range attributes {
		n.AddNodeAttribute(a.Node, a.Key, a.Value)
	}

	return n
}

// parseInteraction converts a row into an interaction. ok is false when the row
// has too few fields; defaulted is true when the weight did not parse.
func parseInteraction(fields []string) (edge models.Interaction, ok, defaulted bool) {
	if len(fields) < interactionFields {
		return models.Interaction{}, false, false
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		weight = 0
		defaulted = true
	}

	return models.Interaction{
		Source: strings.TrimSpace(fields[0]),
		Target: strings.TrimSpace(fields[1]),
		Kind:   strings.TrimSpace(fields[2]),
		Weight: weight,
	}, true, defaulted
}

func parseAttribute(fields []string) (Attribute, bool) {
	if len(fields) < attributeFields {
		return Attribute{}, false
	}

	return Attribute{
		Node:  strings.TrimSpace(fields[0]),
		Key:   strings.TrimSpace(fields[1]),
		Value: strings.TrimSpace(fields[2]),
	}, true
}

// collectInteractions applies the row rules to data rows (header already removed).
func collectInteractions(rows [][]string) ([]models.Interaction, Stats) {
	var stats Stats
	out := make([]models.Interaction, 0, len(rows))

	for _, row := range rows {
		stats.Rows++

		edge, ok, defaulted := parseInteraction(row)
		if !ok {
			stats.Dropped++
			continue
		}

		if defaulted {
			stats.DefaultedWeights++
		}

		stats.Kept++
		out = append(out, edge)
	}

	return out, stats
}
