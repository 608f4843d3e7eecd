// Package interactive implements the interactive network shell.
package interactive

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
	"github.com/GiulianoDami/MCL1-Regulator/internal/network"
	"github.com/GiulianoDami/MCL1-Regulator/internal/report"
	"github.com/GiulianoDami/MCL1-Regulator/internal/scoring"
	"github.com/GiulianoDami/MCL1-Regulator/internal/service"
)

// LoadFunc builds a network from an interaction file and an optional attribute file.
type LoadFunc func(interactionsPath, attributesPath string) (*network.Network, error)

// Session holds the network a shell is working on and executes commands against it.
type Session struct {
	cfg      scoring.Config
	log      *logrus.Logger
	load     LoadFunc
	net      *network.Network
	graph    *service.GraphService
	analysis *service.AnalysisService
}

// NewSession creates a Session with no network loaded.
func NewSession(cfg scoring.Config, load LoadFunc, log *logrus.Logger) *Session {
	return &Session{cfg: cfg, load: load, log: log}
}

// Use makes net the session's current network.
func (s *Session) Use(net *network.Network) {
	s.net = net
	s.graph = service.NewGraphService(net, s.log)
	s.analysis = service.NewAnalysisService(net, s.cfg, s.log)
}

// Loaded reports whether a network is loaded.
func (s *Session) Loaded() bool {
	return s.net != nil
}

// Nodes returns the ids of the loaded network, or nil.
func (s *Session) Nodes() []string {
	if s.net == nil {
		return nil
	}

	return s.net.Nodes()
}

const errNotLoaded = "no network loaded, use: load <interactions_file> [attributes_file]"

// Execute runs one command line and returns its output. quit is true when the
// line asks the shell to end.
func (s *Session) Execute(ctx context.Context, line string) (output string, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	name, args := strings.ToLower(fields[0]), fields[1:]

	cmd, ok := lookup(name)
	if !ok {
		return fmt.Sprintf("unknown command %q, type help for a list of commands", fields[0]), false
	}

	if cmd.quit {
		return "Bye!", true
	}

	if len(args) < cmd.minArgs {
		return "usage: " + cmd.usage, false
	}

	if cmd.needsNetwork && !s.Loaded() {
		return errNotLoaded, false
	}

	out, err := cmd.run(s, ctx, args)
	if err != nil {
		return "error: " + err.Error(), false
	}

	return out, false
}

func (s *Session) cmdHelp(_ context.Context, _ []string) (string, error) {
	var b strings.Builder

	b.WriteString("Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "  %-34s %s\n", c.usage, c.description)
	}

	return b.String(), nil
}

func (s *Session) cmdLoad(_ context.Context, args []string) (string, error) {
	attributes := ""
	if len(args) > 1 {
		attributes = args[1]
	}

	net, err := s.load(args[0], attributes)
	if err != nil {
		return "", err
	}

	s.Use(net)

	return fmt.Sprintf("loaded %d proteins, %d interactions", net.NodeCount(), net.EdgeCount()), nil
}

func (s *Session) cmdStats(ctx context.Context, _ []string) (string, error) {
	st := s.graph.Stats(ctx)

	return fmt.Sprintf("proteins: %d\ninteractions: %d\nannotated: %d\nkinds: %s",
		st.NodeCount, st.EdgeCount, st.AttributedNodes, strings.Join(st.Kinds, ", ")), nil
}

func (s *Session) cmdNeighbors(ctx context.Context, args []string) (string, error) {
	res, err := s.graph.Neighbors(ctx, args[0])
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s (%d): %s", res.Node, res.Degree, strings.Join(res.Neighbors, " ")), nil
}

func (s *Session) cmdDegree(ctx context.Context, args []string) (string, error) {
	d, err := s.graph.Degree(ctx, args[0])
	if err != nil {
		return "", err
	}

	return strconv.Itoa(d), nil
}

func (s *Session) cmdPath(ctx context.Context, args []string) (string, error) {
	res, err := s.graph.ShortestPath(ctx, args[0], args[1])
	if err != nil {
		return "", err
	}

	if !res.Found {
		return models.ErrNoPath.Error(), nil
	}

	return fmt.Sprintf("%s (%d hops)", strings.Join(res.Path, " -> "), res.Hops), nil
}

func (s *Session) cmdSubnet(ctx context.Context, args []string) (string, error) {
	res, err := s.graph.Subnetwork(ctx, models.SubnetworkRequest{Seeds: args})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("nodes (%d): %s\n%s", len(res.Nodes), strings.Join(res.Nodes, " "),
		strings.TrimSuffix(report.FormatInteractions(res.Edges), "\n")), nil
}

func (s *Session) cmdAttr(ctx context.Context, args []string) (string, error) {
	attrs := s.graph.Attributes(ctx, args[0])
	if len(attrs) == 0 {
		return "no attributes", nil
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+" = "+attrs[k])
	}

	return strings.Join(lines, "\n"), nil
}

func (s *Session) cmdProfile(ctx context.Context, args []string) (string, error) {
	p, err := s.graph.ProteinProfile(ctx, args[0])
	if err != nil {
		return "", err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s), degree %d\n", p.ID, p.Name, p.Degree)
	for _, t := range []models.InteractionType{
		models.InteractionBinding, models.InteractionInhibition, models.InteractionActivation,
		models.InteractionModification, models.InteractionUnknown,
	} {
		for _, i := range p.InteractionsByType(t) {
			fmt.Fprintf(&b, "  %-12s %-10s %.3f\n", t, i.PartnerID, i.BindingAffinity)
		}
	}

	return strings.TrimSuffix(b.String(), "\n"), nil
}

func (s *Session) cmdRisk(ctx context.Context, _ []string) (string, error) {
	return fmt.Sprintf("cardiotoxicity risk: %.3f", s.analysis.Cardiotoxicity(ctx).OverallRisk), nil
}

func (s *Session) cmdTargets(ctx context.Context, _ []string) (string, error) {
	targets := s.analysis.DrugTargets(ctx)
	if len(targets) == 0 {
		return "no drug targets", nil
	}

	lines := make([]string, 0, len(targets))
	for _, t := range targets {
		lines = append(lines, fmt.Sprintf("%s -> %s risk %.3f selectivity %.3f safe=%t selective=%t",
			t.ID, t.TargetProtein, t.CardiotoxicityRisk, t.SelectivityScore, t.SafeForCardiacUse, t.HighlySelective))
	}

	return strings.Join(lines, "\n"), nil
}

func (s *Session) cmdPredict(ctx context.Context, _ []string) (string, error) {
	res, err := s.analysis.Predict(ctx)
	if err != nil {
		return "", err
	}

	if len(res.Prediction.PredictedPathways) == 0 {
		return "no active pathways", nil
	}

	lines := make([]string, 0, len(res.Prediction.PredictedPathways)+1)
	for _, p := range res.Prediction.PredictedPathways {
		lines = append(lines, fmt.Sprintf("%s %.3f (%d proteins)", p.Name, p.ActivationScore, len(p.AssociatedProteins)))
	}
	lines = append(lines, fmt.Sprintf("confidence %.3f", res.Prediction.ConfidenceScore))

	return strings.Join(lines, "\n"), nil
}

func (s *Session) cmdFilter(ctx context.Context, args []string) (string, error) {
	minScore, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", fmt.Errorf("min score must be a number: %w", err)
	}

	return strings.TrimSuffix(report.FormatInteractions(s.graph.FilterByConfidence(ctx, minScore)), "\n"), nil
}
