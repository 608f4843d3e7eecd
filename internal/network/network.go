// Package network holds the in-memory protein interaction graph and its
// traversal algorithms.
//
// A Network is append-only: interactions and node attributes are added during
// a build phase and never removed. It performs no internal locking; callers
// that share a Network between goroutines must finish building it before
// serving concurrent reads.
package network

import (
	"github.com/tidwall/btree"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

// Network is a multigraph of interactions between named proteins.
type Network struct {
	nodes      btree.Set[string]
	edges      []models.Interaction
	attributes map[string]map[string]string
}

// New returns an empty Network.
func New() *Network {
	return &Network{
		attributes: make(map[string]map[string]string),
	}
}

// AddInteraction appends the edge and registers both endpoints as nodes.
// Parallel edges and self-loops are kept as given.
func (n *Network) AddInteraction(edge models.Interaction) {
	n.edges = append(n.edges, edge)
	n.nodes.Insert(edge.Source)
	n.nodes.Insert(edge.Target)
}

// AddNodeAttribute sets key to value for node, overwriting any previous value.
// The node does not need to take part in any interaction.
func (n *Network) AddNodeAttribute(node, key, value string) {
	attrs, ok := n.attributes[node]
	if !ok {
		attrs = make(map[string]string)
		n.attributes[node] = attrs
	}

	attrs[key] = value
}

// Neighbors returns the opposite endpoint of every edge touching node, in edge
// insertion order. Duplicates are kept, and a self-loop contributes node twice,
// so len(Neighbors(x)) == Degree(x).
func (n *Network) Neighbors(node string) []string {
	out := make([]string, 0)

	for _, e := range n.edges {
		if e.Source == node {
			out = append(out, e.Target)
		}

		if e.Target == node {
			out = append(out, e.Source)
		}
	}

	return out
}

// Degree counts source matches plus target matches over all edges.
func (n *Network) Degree(node string) int {
	degree := 0

	for _, e := range n.edges {
		if e.Source == node {
			degree++
		}

		if e.Target == node {
			degree++
		}
	}

	return degree
}

// HasNode reports whether node is an endpoint of at least one interaction.
// Attribute-only nodes are not members.
func (n *Network) HasNode(node string) bool {
	return n.nodes.Contains(node)
}

// Nodes returns all node ids in ascending order.
func (n *Network) Nodes() []string {
	out := make([]string, 0, n.nodes.Len())

	n.nodes.Scan(func(id string) bool {
		out = append(out, id)
		return true
	})

	return out
}

// Edges returns a copy of the edge list in insertion order.
func (n *Network) Edges() []models.Interaction {
	out := make([]models.Interaction, len(n.edges))
	copy(out, n.edges)

	return out
}

// NodeCount returns the number of distinct edge endpoints.
func (n *Network) NodeCount() int {
	return n.nodes.Len()
}

// EdgeCount returns the number of edges, parallel edges included.
func (n *Network) EdgeCount() int {
	return len(n.edges)
}

// Attributes returns a copy of node's attribute map. Unknown nodes yield an
// empty map.
func (n *Network) Attributes(node string) map[string]string {
	attrs := n.attributes[node]
	out := make(map[string]string, len(attrs))

	for k, v := range attrs {
		out[k] = v
	}

	return out
}

// Attribute returns a single attribute value.
func (n *Network) Attribute(node, key string) (string, bool) {
	v, ok := n.attributes[node][key]
	return v, ok
}

// AttributedNodes returns the number of nodes carrying at least one attribute.
func (n *Network) AttributedNodes() int {
	return len(n.attributes)
}

// FilterByConfidence returns the edges whose weight is at least minScore, in
// insertion order.
func (n *Network) FilterByConfidence(minScore float64) []models.Interaction {
	out := make([]models.Interaction, 0)

	for _, e := range n.edges {
		if e.Weight >= minScore {
			out = append(out, e)
		}
	}

	return out
}

// InteractionsByKind returns the edges with the given kind, in insertion order.
func (n *Network) InteractionsByKind(kind string) []models.Interaction {
	out := make([]models.Interaction, 0)

	for _, e := range n.edges {
		if e.Kind == kind {
			out = append(out, e)
		}
	}

	return out
}

// Kinds returns the distinct edge kinds in first-seen order.
func (n *Network) Kinds() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)

	for _, e := range n.edges {
		if !seen[e.Kind] {
			seen[e.Kind] = true
			out = append(out, e.Kind)
		}
	}

	return out
}

// Stats summarises the network size.
func (n *Network) Stats() models.NetworkStats {
	return models.NetworkStats{
		NodeCount:       n.NodeCount(),
		EdgeCount:       n.EdgeCount(),
		AttributedNodes: n.AttributedNodes(),
		Kinds:           n.Kinds(),
	}
}
