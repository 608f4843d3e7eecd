package service

import (
	"context"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

// nameAttribute is the attribute key holding a protein's display name.
const nameAttribute = "name"

// ProteinProfile returns nodeID with its attributes and every interaction it
// takes part in, typed by edge kind.
func (s *GraphService) ProteinProfile(_ context.Context, nodeID string) (*models.Protein, error) {
	s.log.WithField("node_id", nodeID).Debug("graph.protein_profile")

	attrs := s.net.Attributes(nodeID)
	if !s.net.HasNode(nodeID) && len(attrs) == 0 {
		return nil, models.ErrNodeNotFound
	}

	p := &models.Protein{
		ID:           nodeID,
		Name:         nodeID,
		Attributes:   attrs,
		Degree:       s.net.Degree(nodeID),
		Interactions: make([]models.PartnerInteraction, 0),
	}

	if name, ok := attrs[nameAttribute]; ok {
		p.Name = name
	}

	for _, e := range s.net.Edges() {
		if !e.Touches(nodeID) {
			continue
		}

		partner := e.Other(nodeID)
		partnerName, _ := s.net.Attribute(partner, nameAttribute)

		p.Interactions = append(p.Interactions, models.PartnerInteraction{
			PartnerID:       partner,
			PartnerName:     partnerName,
			BindingAffinity: e.Weight,
			Type:            models.ParseInteractionType(e.Kind),
			Evidence:        e.Kind,
		})
	}

	return p, nil
}
