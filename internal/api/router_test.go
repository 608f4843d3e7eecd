package api_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/GiulianoDami/MCL1-Regulator/internal/api"
	"github.com/GiulianoDami/MCL1-Regulator/internal/middleware"
	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
	"github.com/GiulianoDami/MCL1-Regulator/internal/network"
	"github.com/GiulianoDami/MCL1-Regulator/internal/scoring"
	"github.com/GiulianoDami/MCL1-Regulator/internal/service"
)

func newTestServer() http.Handler {
	net := network.New()
	net.AddInteraction(models.Interaction{Source: "MCL1", Target: "BAK", Kind: "binding", Weight: 0.9})
	net.AddInteraction(models.Interaction{Source: "BAK", Target: "BAX", Kind: "binding", Weight: 0.7})
	net.AddInteraction(models.Interaction{Source: "NOXA", Target: "MCL1", Kind: "inhibition", Weight: 0.85})
	net.AddInteraction(models.Interaction{Source: "X", Target: "Y", Kind: "binding", Weight: 0.4})

	log := testLogger()

	return api.NewRouter(&api.RouterDeps{
		Log:           log,
		Graph:         service.NewGraphService(net, log),
		Analysis:      service.NewAnalysisService(net, scoring.DefaultConfig(), log),
		CORSOrigins:   []string{"http://localhost:3000"},
		Version:       "test",
		MinConfidence: 0.8,
		TopHubs:       5,
	})
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	w := doRequest(newTestServer(), http.MethodGet, "/api/v1/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body["status"] != "ok" || body["version"] != "test" || body["nodes"] != float64(6) {
		t.Errorf("unexpected health body: %v", body)
	}

	if _, err := uuid.Parse(w.Header().Get(middleware.RequestIDHeader)); err != nil {
		t.Errorf("missing request id header: %v", err)
	}
}

func TestRouter_EndToEnd(t *testing.T) {
	t.Parallel()

	srv := newTestServer()

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
		contains string
	}{
		{"stats", http.MethodGet, "/api/v1/stats", "", http.StatusOK, `"edge_count":4`},
		{"neighbors", http.MethodGet, "/api/v1/graph/neighbors/MCL1", "", http.StatusOK, `"neighbors":["BAK","NOXA"]`},
		{"unknown neighbors", http.MethodGet, "/api/v1/graph/neighbors/NOPE", "", http.StatusNotFound, `"request_id"`},
		{"degree", http.MethodGet, "/api/v1/graph/degree/BAK", "", http.StatusOK, `"degree":2`},
		{"path", http.MethodGet, "/api/v1/graph/path/NOXA/BAX", "", http.StatusOK, `"path":["NOXA","MCL1","BAK","BAX"]`},
		{"no path", http.MethodGet, "/api/v1/graph/path/MCL1/Y", "", http.StatusNotFound, "no path found"},
		{"subnetwork", http.MethodPost, "/api/v1/graph/subnetwork", `{"seeds":["X"]}`, http.StatusOK, `"nodes":["X","Y"]`},
		{"subnetwork without seeds", http.MethodPost, "/api/v1/graph/subnetwork", `{}`, http.StatusBadRequest, "validation_error"},
		{"protein", http.MethodGet, "/api/v1/proteins/MCL1", "", http.StatusOK, `"interaction_type":"inhibition"`},
		{"analysis", http.MethodGet, "/api/v1/analysis?top=1", "", http.StatusOK, `"hubs":[{"id":"BAK","degree":2}]`},
		{"cardiotoxicity", http.MethodGet, "/api/v1/analysis/cardiotoxicity", "", http.StatusOK, `"overall_risk"`},
		{"drug targets", http.MethodGet, "/api/v1/analysis/drug-targets", "", http.StatusOK, `"target_protein":"MCL1"`},
		{"pathways", http.MethodGet, "/api/v1/analysis/pathways", "", http.StatusOK, `"protein_scores"`},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK, "interactome_http_requests_total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(srv, tt.method, tt.path, tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}

			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("body missing %q: %s", tt.contains, w.Body.String())
			}
		})
	}
}
