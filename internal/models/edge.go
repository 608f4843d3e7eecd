package models

import "fmt"

// Interaction is a single edge record between two proteins. Source and target
// keep the direction the interaction was recorded in, but traversal treats the
// edge as undirected.
type Interaction struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Kind   string  `json:"kind"`
	Weight float64 `json:"weight"`
}

// Other returns the endpoint of the interaction opposite to node. For a
// self-loop it returns node itself.
func (i Interaction) Other(node string) string {
	if i.Source == node {
		return i.Target
	}

	return i.Source
}

// Touches reports whether node is either endpoint of the interaction.
func (i Interaction) Touches(node string) bool {
	return i.Source == node || i.Target == node
}

// SubnetworkRequest is the payload for extracting an induced subnetwork.
type SubnetworkRequest struct {
	Seeds []string `json:"seeds"`
}

// Validate checks that at least one seed is given and that every seed is usable as a node id.
func (r *SubnetworkRequest) Validate() error {
	if len(r.Seeds) == 0 {
		return ErrMissingSeeds
	}

	if len(r.Seeds) > 1000 {
		return fmt.Errorf("seeds exceeds maximum count of 1000")
	}

	for _, s := range r.Seeds {
		if s == "" {
			return ErrEmptySeed
		}

		if len(s) > 255 {
			return ErrFieldTooLong("seed", 255)
		}
	}

	return nil
}
