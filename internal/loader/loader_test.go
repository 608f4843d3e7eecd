package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/GiulianoDami/MCL1-Regulator/internal/loader"
	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

const sampleCSV = `protein_a,protein_b,interaction_type,confidence_score
MCL1, BAK ,binding,0.92
MCL1,NOXA,inhibition,high
short,row
MCL1,MTOR,activation,0.61

BAK,BAX,binding,0.8
`

func TestReadInteractionsCSV(t *testing.T) {
	got, stats, err := loader.ReadInteractionsCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.Interaction{
		{Source: "MCL1", Target: "BAK", Kind: "binding", Weight: 0.92},
		{Source: "MCL1", Target: "NOXA", Kind: "inhibition", Weight: 0},
		{Source: "MCL1", Target: "MTOR", Kind: "activation", Weight: 0.61},
		{Source: "BAK", Target: "BAX", Kind: "binding", Weight: 0.8},
	}
	if !slices.Equal(got, want) {
		t.Errorf("interactions:\n got  %v\n want %v", got, want)
	}

	if stats.Kept != 4 || stats.Dropped != 1 || stats.DefaultedWeights != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestReadInteractionsCSV_HeaderOnlyAndEmpty(t *testing.T) {
	for _, input := range []string{"", "a,b,kind,weight\n"} {
		got, stats, err := loader.ReadInteractionsCSV(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if len(got) != 0 || stats.Rows != 0 {
			t.Errorf("expected no rows for %q, got %v (%+v)", input, got, stats)
		}
	}
}

func TestReadInteractionsCSV_ExtraFieldsIgnored(t *testing.T) {
	input := "h1,h2,h3,h4\nA,B,binding,0.5,PMID:123,curated\n"

	got, _, err := loader.ReadInteractionsCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Weight != 0.5 || got[0].Kind != "binding" {
		t.Errorf("got %v", got)
	}
}

func TestReadInteractionsCSV_StrayQuoteKeepsLaterRows(t *testing.T) {
	input := "source,target,kind,weight\n\"P1,P2,binding,0.9\nP2,P3,binding,0.5\nP3,P4,binding,0.4\n"

	got, stats, err := loader.ReadInteractionsCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.Interaction{
		{Source: `"P1`, Target: "P2", Kind: "binding", Weight: 0.9},
		{Source: "P2", Target: "P3", Kind: "binding", Weight: 0.5},
		{Source: "P3", Target: "P4", Kind: "binding", Weight: 0.4},
	}
	if !slices.Equal(got, want) {
		t.Errorf("interactions:\n got  %v\n want %v", got, want)
	}
	if stats.Rows != 3 || stats.Kept != 3 || stats.Dropped != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestReadInteractionsCSV_QuotedCommaSplits(t *testing.T) {
	input := "h1,h2,h3,h4\n\"A,B\",C,binding\nC,D,binding,0.7\n"

	got, stats, err := loader.ReadInteractionsCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 || got[0].Source != `"A` || got[0].Weight != 0 || got[1].Source != "C" {
		t.Errorf("got %v", got)
	}
	if stats.DefaultedWeights != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestReadAttributesCSV(t *testing.T) {
	input := "node,key,value\nMCL1,role,anti-apoptotic\nMCL1,family, BCL2\nbroken,row\n"

	got, stats, err := loader.ReadAttributesCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []loader.Attribute{
		{Node: "MCL1", Key: "role", Value: "anti-apoptotic"},
		{Node: "MCL1", Key: "family", Value: "BCL2"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if stats.Kept != 2 || stats.Dropped != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestLoadInteractionsFile_Missing(t *testing.T) {
	_, _, err := loader.LoadInteractionsFile(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestLoadInteractionsFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interactions.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatal(err)
	}

	got, _, err := loader.LoadInteractionsFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("expected 4 interactions, got %d", len(got))
	}
}

func TestLoadInteractionsFile_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interactions.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"protein_a", "protein_b", "type", "score"},
		{"MCL1", "BAK", "binding", "0.9"},
		{"MCL1", "NOXA"},
		{"BAK", "BAX", "binding", "n/a"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, stats, err := loader.LoadInteractionsFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.Interaction{
		{Source: "MCL1", Target: "BAK", Kind: "binding", Weight: 0.9},
		{Source: "BAK", Target: "BAX", Kind: "binding", Weight: 0},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if stats.Dropped != 1 || stats.DefaultedWeights != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestLoadInteractionsFile_LegacyXLS(t *testing.T) {
	_, _, err := loader.LoadInteractionsFile("data.xls")
	if !errors.Is(err, loader.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestBuildNetwork(t *testing.T) {
	n := loader.BuildNetwork(
		[]models.Interaction{{Source: "A", Target: "B", Kind: "binding", Weight: 1}},
		[]loader.Attribute{{Node: "A", Key: "role", Value: "kinase"}, {Node: "Z", Key: "role", Value: "orphan"}},
	)

	if n.EdgeCount() != 1 || n.NodeCount() != 2 {
		t.Errorf("unexpected size: %d nodes, %d edges", n.NodeCount(), n.EdgeCount())
	}
	if v, ok := n.Attribute("Z", "role"); !ok || v != "orphan" {
		t.Error("attribute-only node not recorded")
	}
	if n.HasNode("Z") {
		t.Error("attribute-only node must not become a member")
	}
}
