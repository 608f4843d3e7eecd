package network

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/hashset"
)

// ShortestPath finds a minimum-hop path between start and end using BFS over
// the undirected neighbor relation. It returns the node ids from start to end
// and true, or nil and false when end is unreachable. Ties are broken by edge
// insertion order. start == end yields [start] even for unknown nodes.
func (n *Network) ShortestPath(start, end string) ([]string, bool) {
	if start == end {
		return []string{start}, true
	}

	visited := hashset.New(start)
	parent := map[string]string{} // child -> parent
	frontier := linkedlistqueue.New()
	frontier.Enqueue(start)

	for !frontier.Empty() {
		v, _ := frontier.Dequeue()
		current := v.(string)

		for _, next := range n.Neighbors(current) {
			if visited.Contains(next) {
				continue
			}

			visited.Add(next)
			parent[next] = current

			if next == end {
				return tracePath(parent, start, end), true
			}

			frontier.Enqueue(next)
		}
	}

	return nil, false
}

// tracePath walks parent links back from end and returns the path in
// start-to-end order.
func tracePath(parent map[string]string, start, end string) []string {
	trail := []string{end}

	for current := end; current != start; {
		p, ok := parent[current]
		if !ok {
			break
		}

		trail = append(trail, p)
		current = p
	}

	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}

	return trail
}
