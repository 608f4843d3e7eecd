// Package service provides the query and analysis logic between the network
// engine and its callers (CLI, REPL, HTTP API).
package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/GiulianoDami/MCL1-Regulator/internal/domain"
	"github.com/GiulianoDami/MCL1-Regulator/internal/metrics"
	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
	"github.com/GiulianoDami/MCL1-Regulator/internal/network"
)

// Compile-time check: *GraphService must satisfy domain.GraphService.
var _ domain.GraphService = (*GraphService)(nil)

// GraphService answers graph queries over a loaded network with logging and
// traversal metrics. The network must not be mutated once the service is in use.
type GraphService struct {
	net *network.Network
	log *logrus.Logger
}

// NewGraphService creates a GraphService.
func NewGraphService(net *network.Network, log *logrus.Logger) *GraphService {
	return &GraphService{net: net, log: log}
}

// Stats returns node, edge and kind counts for the network.
func (s *GraphService) Stats(_ context.Context) models.NetworkStats {
	return s.net.Stats()
}

// Neighbors returns every partner of nodeID in edge order, duplicates included.
func (s *GraphService) Neighbors(_ context.Context, nodeID string) (*models.NeighborResult, error) {
	s.log.WithField("node_id", nodeID).Debug("graph.neighbors")

	if !s.net.HasNode(nodeID) {
		return nil, models.ErrNodeNotFound
	}

	neighbors := s.net.Neighbors(nodeID)

	return &models.NeighborResult{Node: nodeID, Neighbors: neighbors, Degree: len(neighbors)}, nil
}

// Degree returns the number of edge endpoints at nodeID.
func (s *GraphService) Degree(_ context.Context, nodeID string) (int, error) {
	s.log.WithField("node_id", nodeID).Debug("graph.degree")

	if !s.net.HasNode(nodeID) {
		return 0, models.ErrNodeNotFound
	}

	return s.net.Degree(nodeID), nil
}

// ShortestPath finds a minimum-hop path between two nodes. A missing path is
// reported through Found, not as an error.
func (s *GraphService) ShortestPath(ctx context.Context, fromID, toID string) (*models.PathResult, error) {
	s.log.WithFields(logrus.Fields{
		"from_id": fromID,
		"to_id":   toID,
	}).Debug("graph.shortest_path")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	path, found := s.net.ShortestPath(fromID, toID)
	metrics.TraversalDuration.WithLabelValues("shortest_path").Observe(time.Since(start).Seconds())

	result := &models.PathResult{From: fromID, To: toID, Path: path, Found: found}
	if found {
		result.Hops = len(path) - 1
	} else {
		result.Path = []string{}
	}

	return result, nil
}

// Subnetwork extracts everything reachable from the requested seeds.
func (s *GraphService) Subnetwork(ctx context.Context, req models.SubnetworkRequest) (*models.SubnetworkResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidRequest, err)
	}

	s.log.WithField("seeds", len(req.Seeds)).Debug("graph.subnetwork")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	sub := s.net.Subnetwork(req.Seeds)
	metrics.TraversalDuration.WithLabelValues("subnetwork").Observe(time.Since(start).Seconds())

	result := &models.SubnetworkResult{
		Seeds:      req.Seeds,
		Nodes:      sub.Nodes(),
		Edges:      sub.Edges(),
		Attributes: make(map[string]map[string]string),
	}

	for _, id := range append(slices.Clone(result.Nodes), req.Seeds...) {
		if attrs := sub.Attributes(id); len(attrs) > 0 {
			result.Attributes[id] = attrs
		}
	}

	return result, nil
}

// Attributes returns the attributes recorded for nodeID.
func (s *GraphService) Attributes(_ context.Context, nodeID string) map[string]string {
	s.log.WithField("node_id", nodeID).Debug("graph.attributes")

	return s.net.Attributes(nodeID)
}

// FilterByConfidence returns the interactions whose weight is at least minScore.
func (s *GraphService) FilterByConfidence(_ context.Context, minScore float64) []models.Interaction {
	s.log.WithField("min_score", minScore).Debug("graph.filter_confidence")

	return s.net.FilterByConfidence(minScore)
}
