package models_test

import (
	"strings"
	"testing"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

func assertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func assertErrorContains(t *testing.T, err error, want string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}

	if !strings.Contains(err.Error(), want) {
		t.Errorf("expected error containing %q, got %q", want, err.Error())
	}
}

func TestSubnetworkRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SubnetworkRequest
		wantErr string
	}{
		{name: "valid", req: models.SubnetworkRequest{Seeds: []string{"MCL1"}}},
		{name: "missing seeds", req: models.SubnetworkRequest{}, wantErr: "at least one seed"},
		{name: "empty seed", req: models.SubnetworkRequest{Seeds: []string{"MCL1", ""}}, wantErr: "must not be empty"},
		{name: "seed too long", req: models.SubnetworkRequest{Seeds: []string{strings.Repeat("x", 256)}}, wantErr: "exceeds maximum length"},
		{name: "too many seeds", req: models.SubnetworkRequest{Seeds: make([]string, 1001)}, wantErr: "maximum count"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
		})
	}
}

func TestInteraction_OtherAndTouches(t *testing.T) {
	e := models.Interaction{Source: "P1", Target: "P2", Kind: "binding", Weight: 0.9}

	if got := e.Other("P1"); got != "P2" {
		t.Errorf("Other(P1) = %q, want P2", got)
	}
	if got := e.Other("P2"); got != "P1" {
		t.Errorf("Other(P2) = %q, want P1", got)
	}
	if !e.Touches("P1") || !e.Touches("P2") {
		t.Error("expected edge to touch both endpoints")
	}
	if e.Touches("p1") {
		t.Error("node ids are case-sensitive")
	}

	loop := models.Interaction{Source: "X", Target: "X"}
	if got := loop.Other("X"); got != "X" {
		t.Errorf("self-loop Other = %q, want X", got)
	}
}

func TestParseInteractionType(t *testing.T) {
	tests := []struct {
		kind string
		want models.InteractionType
	}{
		{"binding", models.InteractionBinding},
		{"Binds", models.InteractionBinding},
		{" inhibition ", models.InteractionInhibition},
		{"activates", models.InteractionActivation},
		{"phosphorylation", models.InteractionModification},
		{"coexpression", models.InteractionUnknown},
		{"", models.InteractionUnknown},
	}

	for _, tc := range tests {
		if got := models.ParseInteractionType(tc.kind); got != tc.want {
			t.Errorf("ParseInteractionType(%q) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestProtein_InteractionsByType(t *testing.T) {
	p := models.Protein{
		ID: "MCL1",
		Interactions: []models.PartnerInteraction{
			{PartnerID: "BAK", Type: models.InteractionBinding},
			{PartnerID: "NOXA", Type: models.InteractionInhibition},
			{PartnerID: "BIM", Type: models.InteractionBinding},
			{PartnerID: "MTOR", Type: models.InteractionActivation},
		},
	}

	if got := len(p.BindingPartners()); got != 2 {
		t.Errorf("binding partners: got %d, want 2", got)
	}
	if got := p.Inhibitors(); len(got) != 1 || got[0].PartnerID != "NOXA" {
		t.Errorf("inhibitors: got %v", got)
	}
	if got := p.Activators(); len(got) != 1 || got[0].PartnerID != "MTOR" {
		t.Errorf("activators: got %v", got)
	}
	if got := p.InteractionsByType(models.InteractionModification); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}
