package client

import (
	"context"
	"net/url"
	"strconv"
)

// AnalysisService handles scoring endpoints.
type AnalysisService struct {
	c *Client
}

// AnalyzeOptions overrides the server's analysis defaults. Zero values keep
// the server default.
type AnalyzeOptions struct {
	MinConfidence *float64
	Top           int
}

// Analyze runs the full network analysis.
func (s *AnalysisService) Analyze(ctx context.Context, opts AnalyzeOptions) (*AnalysisReport, error) {
	params := url.Values{}
	if opts.MinConfidence != nil {
		params.Set("min_confidence", strconv.FormatFloat(*opts.MinConfidence, 'f', -1, 64))
	}
	if opts.Top > 0 {
		params.Set("top", strconv.Itoa(opts.Top))
	}
	var resp AnalysisReport
	if err := s.c.get(ctx, "/api/v1/analysis", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Cardiotoxicity returns the overall risk and the risk of every interaction.
func (s *AnalysisService) Cardiotoxicity(ctx context.Context) (*CardiotoxicityReport, error) {
	var resp CardiotoxicityReport
	if err := s.c.get(ctx, "/api/v1/analysis/cardiotoxicity", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DrugTargets returns the drug target candidates.
func (s *AnalysisService) DrugTargets(ctx context.Context) ([]DrugTarget, error) {
	var resp struct {
		DrugTargets []DrugTarget `json:"drug_targets"`
	}
	if err := s.c.get(ctx, "/api/v1/analysis/drug-targets", nil, &resp); err != nil {
		return nil, err
	}
	return resp.DrugTargets, nil
}

// Pathways runs a pathway prediction.
func (s *AnalysisService) Pathways(ctx context.Context) (*PredictionReport, error) {
	var resp PredictionReport
	if err := s.c.get(ctx, "/api/v1/analysis/pathways", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
