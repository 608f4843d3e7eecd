package network

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Subnetwork extracts the induced subnetwork of everything reachable from
// seeds. Expansion is depth-first: a node is popped, marked, its attributes are
// copied, and every edge touching it is selected while unvisited endpoints are
// pushed.
//
// Each parent edge is copied at most once and the result keeps the parent's
// edge order, so the result's edges are exactly the parent edges with at least
// one endpoint in the reachable closure. Parallel edges that are separate
// records in the parent remain separate. The returned Network shares no state
// with n.
func (n *Network) Subnetwork(seeds []string) *Network {
	sub := New()
	visited := hashset.New()
	selected := make([]bool, len(n.edges))

	stack := arraystack.New()
	for _, s := range seeds {
		stack.Push(s)
	}

	for !stack.Empty() {
		v, _ := stack.Pop()
		node := v.(string)

		if visited.Contains(node) {
			continue
		}

		visited.Add(node)

		for k, val := range n.attributes[node] {
			sub.AddNodeAttribute(node, k, val)
		}

		for i, e := range n.edges {
			if !e.Touches(node) {
				continue
			}

			selected[i] = true

			if other := e.Other(node); !visited.Contains(other) {
				stack.Push(other)
			}
		}
	}

	for i, ok := range selected {
		if ok {
			sub.AddInteraction(n.edges[i])
		}
	}

	return sub
}
