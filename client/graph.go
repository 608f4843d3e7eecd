package client

import (
	"context"
	"fmt"
	"net/url"
)

// GraphService handles traversal queries.
type GraphService struct {
	c *Client
}

// Neighbors returns the interaction partners of a protein, one entry per edge.
func (s *GraphService) Neighbors(ctx context.Context, id string) (*NeighborResult, error) {
	var resp NeighborResult
	if err := s.c.get(ctx, "/api/v1/graph/neighbors/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Degree returns the number of edge endpoints at a protein.
func (s *GraphService) Degree(ctx context.Context, id string) (int, error) {
	var resp struct {
		Degree int `json:"degree"`
	}
	if err := s.c.get(ctx, "/api/v1/graph/degree/"+url.PathEscape(id), nil, &resp); err != nil {
		return 0, err
	}
	return resp.Degree, nil
}

// ShortestPath finds a fewest-hop path between two proteins. A missing path
// is reported as an APIError satisfying IsNotFound.
func (s *GraphService) ShortestPath(ctx context.Context, fromID, toID string) (*PathResult, error) {
	path := fmt.Sprintf("/api/v1/graph/path/%s/%s", url.PathEscape(fromID), url.PathEscape(toID))
	var resp PathResult
	if err := s.c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Subnetwork extracts the subnetwork reachable from the seeds.
func (s *GraphService) Subnetwork(ctx context.Context, seeds ...string) (*SubnetworkResult, error) {
	var resp SubnetworkResult
	if err := s.c.post(ctx, "/api/v1/graph/subnetwork", map[string][]string{"seeds": seeds}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
