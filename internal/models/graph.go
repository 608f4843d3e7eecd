package models

// NeighborResult holds the partners directly connected to a node.
type NeighborResult struct {
	Node      string   `json:"node"`
	Neighbors []string `json:"neighbors"`
	Degree    int      `json:"degree"`
}

// PathResult holds a shortest path between two nodes.
type PathResult struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Path  []string `json:"path"`
	Found bool     `json:"found"`
	Hops  int      `json:"hops"`
}

// SubnetworkResult holds the induced subnetwork reachable from a seed set.
type SubnetworkResult struct {
	Seeds      []string                     `json:"seeds"`
	Nodes      []string                     `json:"nodes"`
	Edges      []Interaction                `json:"edges"`
	Attributes map[string]map[string]string `json:"attributes,omitempty"`
}

// NetworkStats summarises the size of a network.
type NetworkStats struct {
	NodeCount       int      `json:"node_count"`
	EdgeCount       int      `json:"edge_count"`
	AttributedNodes int      `json:"attributed_nodes"`
	Kinds           []string `json:"kinds"`
}
