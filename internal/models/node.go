// Package models defines data types for the protein interaction network.
package models

import "strings"

// InteractionType classifies how two proteins interact.
type InteractionType string

// Known interaction types. Edge kinds that match none of these map to InteractionUnknown.
const (
	InteractionBinding      InteractionType = "binding"
	InteractionInhibition   InteractionType = "inhibition"
	InteractionActivation   InteractionType = "activation"
	InteractionModification InteractionType = "modification"
	InteractionUnknown      InteractionType = "unknown"
)

// ParseInteractionType maps a free-form edge kind onto an InteractionType.
// Matching is case-insensitive and accepts the verb forms used in common datasets.
func ParseInteractionType(kind string) InteractionType {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "binding", "binds", "bind":
		return InteractionBinding
	case "inhibition", "inhibits", "inhibit":
		return InteractionInhibition
	case "activation", "activates", "activate":
		return InteractionActivation
	case "modification", "modifies", "phosphorylation":
		return InteractionModification
	default:
		return InteractionUnknown
	}
}

// PartnerInteraction is one interaction seen from a protein's side.
type PartnerInteraction struct {
	PartnerID       string          `json:"partner_id"`
	PartnerName     string          `json:"partner_name,omitempty"`
	BindingAffinity float64         `json:"binding_affinity"`
	Type            InteractionType `json:"interaction_type"`
	Evidence        string          `json:"evidence"`
}

// Protein is a node of the network together with its attributes and its interactions.
type Protein struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Attributes   map[string]string    `json:"attributes"`
	Degree       int                  `json:"degree"`
	Interactions []PartnerInteraction `json:"interactions"`
}

// InteractionsByType returns the protein's interactions of the given type.
func (p *Protein) InteractionsByType(t InteractionType) []PartnerInteraction {
	out := make([]PartnerInteraction, 0)

	for _, i := range p.Interactions {
		if i.Type == t {
			out = append(out, i)
		}
	}

	return out
}

// BindingPartners returns the binding interactions.
func (p *Protein) BindingPartners() []PartnerInteraction {
	return p.InteractionsByType(InteractionBinding)
}

// Inhibitors returns the inhibition interactions.
func (p *Protein) Inhibitors() []PartnerInteraction {
	return p.InteractionsByType(InteractionInhibition)
}

// Activators returns the activation interactions.
func (p *Protein) Activators() []PartnerInteraction {
	return p.InteractionsByType(InteractionActivation)
}
