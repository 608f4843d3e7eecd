package client

import (
	"context"
	"net/url"
)

// ProteinService handles protein lookups.
type ProteinService struct {
	c *Client
}

// Get returns a protein with its attributes and typed interactions.
func (s *ProteinService) Get(ctx context.Context, id string) (*Protein, error) {
	var resp Protein
	if err := s.c.get(ctx, "/api/v1/proteins/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
