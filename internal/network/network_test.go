package network_test

import (
	"slices"
	"testing"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
	"github.com/GiulianoDami/MCL1-Regulator/internal/network"
)

func edge(src, dst string) models.Interaction {
	return models.Interaction{Source: src, Target: dst, Kind: "binding", Weight: 1}
}

func build(edges ...models.Interaction) *network.Network {
	n := network.New()
	for _, e := range edges {
		n.AddInteraction(e)
	}
	return n
}

func TestAddInteraction_RoundTrip(t *testing.T) {
	n := build(models.Interaction{Source: "P1", Target: "P2", Kind: "binding", Weight: 0.9})

	if !slices.Contains(n.Neighbors("P1"), "P2") {
		t.Errorf("Neighbors(P1) = %v, want to contain P2", n.Neighbors("P1"))
	}
	if !slices.Contains(n.Neighbors("P2"), "P1") {
		t.Errorf("Neighbors(P2) = %v, want to contain P1", n.Neighbors("P2"))
	}
	if !n.HasNode("P1") || !n.HasNode("P2") {
		t.Error("both endpoints must be registered as nodes")
	}
	if n.NodeCount() != 2 || n.EdgeCount() != 1 {
		t.Errorf("counts: got %d nodes / %d edges, want 2 / 1", n.NodeCount(), n.EdgeCount())
	}
}

func TestDegreeMatchesNeighbors(t *testing.T) {
	n := build(
		edge("A", "B"),
		edge("A", "B"),
		edge("B", "C"),
		edge("C", "A"),
		edge("D", "D"),
	)

	tests := []struct {
		node       string
		wantDegree int
	}{
		{"A", 3},
		{"B", 3},
		{"C", 2},
		{"D", 2},
		{"missing", 0},
	}

	for _, tc := range tests {
		t.Run(tc.node, func(t *testing.T) {
			if got := n.Degree(tc.node); got != tc.wantDegree {
				t.Errorf("Degree(%s) = %d, want %d", tc.node, got, tc.wantDegree)
			}
			if got := len(n.Neighbors(tc.node)); got != tc.wantDegree {
				t.Errorf("len(Neighbors(%s)) = %d, want %d", tc.node, got, tc.wantDegree)
			}
		})
	}
}

func TestNeighbors_InsertionOrderWithDuplicates(t *testing.T) {
	n := build(edge("A", "B"), edge("C", "A"), edge("A", "B"), edge("X", "Y"))

	want := []string{"B", "C", "B"}
	if got := n.Neighbors("A"); !slices.Equal(got, want) {
		t.Errorf("Neighbors(A) = %v, want %v", got, want)
	}

	if got := n.Neighbors("nobody"); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice for unknown node, got %v", got)
	}
}

func TestSelfLoop(t *testing.T) {
	n := build(edge("X", "X"))

	if got := n.Degree("X"); got != 2 {
		t.Errorf("self-loop degree = %d, want 2", got)
	}
	if got := n.Neighbors("X"); !slices.Equal(got, []string{"X", "X"}) {
		t.Errorf("self-loop neighbors = %v, want [X X]", got)
	}
}

func TestAttributeOnlyNode(t *testing.T) {
	n := build(edge("A", "B"))
	n.AddNodeAttribute("X", "role", "kinase")

	if got := n.Degree("X"); got != 0 {
		t.Errorf("Degree(X) = %d, want 0", got)
	}
	if got := n.Neighbors("X"); len(got) != 0 {
		t.Errorf("Neighbors(X) = %v, want empty", got)
	}
	if v, ok := n.Attribute("X", "role"); !ok || v != "kinase" {
		t.Errorf("Attribute(X, role) = %q, %v; want kinase, true", v, ok)
	}
	if n.HasNode("X") {
		t.Error("attribute-only node must not become an edge member")
	}
}

func TestAddNodeAttribute_Overwrite(t *testing.T) {
	n := network.New()
	n.AddNodeAttribute("MCL1", "role", "anti-apoptotic")
	n.AddNodeAttribute("MCL1", "role", "survival")
	n.AddNodeAttribute("MCL1", "family", "BCL2")

	attrs := n.Attributes("MCL1")
	if attrs["role"] != "survival" || attrs["family"] != "BCL2" || len(attrs) != 2 {
		t.Errorf("unexpected attributes: %v", attrs)
	}

	attrs["role"] = "mutated"
	if v, _ := n.Attribute("MCL1", "role"); v != "survival" {
		t.Error("Attributes must return a copy")
	}

	if got := n.Attributes("unknown"); got == nil || len(got) != 0 {
		t.Errorf("expected empty map for unknown node, got %v", got)
	}
}

func TestNodesSortedAndEdgesOrdered(t *testing.T) {
	n := build(edge("mTOR", "MCL1"), edge("BAK", "MCL1"), edge("BAX", "BAK"))

	if got, want := n.Nodes(), []string{"BAK", "BAX", "MCL1", "mTOR"}; !slices.Equal(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}

	edges := n.Edges()
	if len(edges) != 3 || edges[0].Source != "mTOR" || edges[2].Target != "BAK" {
		t.Errorf("Edges() not in insertion order: %v", edges)
	}

	edges[0].Source = "changed"
	if n.Edges()[0].Source != "mTOR" {
		t.Error("Edges must return a copy")
	}
}

func TestFilterByConfidenceAndKinds(t *testing.T) {
	n := build(
		models.Interaction{Source: "A", Target: "B", Kind: "binding", Weight: 0.9},
		models.Interaction{Source: "A", Target: "C", Kind: "inhibition", Weight: 0.4},
		models.Interaction{Source: "B", Target: "C", Kind: "binding", Weight: 0.7},
	)

	if got := n.FilterByConfidence(0.7); len(got) != 2 || got[0].Target != "B" || got[1].Source != "B" {
		t.Errorf("FilterByConfidence(0.7) = %v", got)
	}
	if got := n.InteractionsByKind("inhibition"); len(got) != 1 || got[0].Target != "C" {
		t.Errorf("InteractionsByKind = %v", got)
	}
	if got := n.Kinds(); !slices.Equal(got, []string{"binding", "inhibition"}) {
		t.Errorf("Kinds() = %v", got)
	}

	n.AddNodeAttribute("A", "name", "alpha")
	n.AddNodeAttribute("A", "family", "BCL2")
	n.AddNodeAttribute("GHOST", "name", "ghost")

	stats := n.Stats()
	if stats.NodeCount != 3 || stats.EdgeCount != 3 || stats.AttributedNodes != 2 {
		t.Errorf("Stats() = %+v", stats)
	}
}
