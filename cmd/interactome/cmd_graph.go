package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
	"github.com/GiulianoDami/MCL1-Regulator/internal/report"
	"github.com/GiulianoDami/MCL1-Regulator/internal/service"
)

var (
	graphInput      string
	graphAttributes string
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "One-shot graph queries",
	}
	cmd.PersistentFlags().StringVar(&graphInput, "input", "", "Interaction file (CSV or XLSX)")
	cmd.PersistentFlags().StringVar(&graphAttributes, "attributes", "", "Node attribute CSV (node,key,value)")
	_ = cmd.MarkPersistentFlagRequired("input")

	cmd.AddCommand(graphNeighborsCmd())
	cmd.AddCommand(graphDegreeCmd())
	cmd.AddCommand(graphPathCmd())
	cmd.AddCommand(graphSubnetCmd())
	cmd.AddCommand(graphProfileCmd())
	return cmd
}

// graphService loads --input and wraps it in a GraphService.
func graphService() (*service.GraphService, error) {
	net, err := loadNetwork(graphInput, graphAttributes)
	if err != nil {
		return nil, err
	}
	return service.NewGraphService(net, logger), nil
}

func graphNeighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <id>",
		Short: "List the interaction partners of a protein",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			svc, err := graphService()
			if err != nil {
				return err
			}

			result, err := svc.Neighbors(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("neighbors %s: %w", args[0], err)
			}

			rows := make([][]string, 0, len(result.Neighbors))
			for _, n := range result.Neighbors {
				rows = append(rows, []string{n})
			}

			return output(cmd.OutOrStdout(), view{
				value:   result,
				text:    strings.Join(result.Neighbors, "\n"),
				headers: []string{"NEIGHBOR"},
				rows:    rows,
			})
		},
	}
}

func graphDegreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "degree <id>",
		Short: "Count the interaction endpoints at a protein",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			svc, err := graphService()
			if err != nil {
				return err
			}

			degree, err := svc.Degree(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("degree %s: %w", args[0], err)
			}

			return output(cmd.OutOrStdout(), view{
				value:   map[string]any{"node": args[0], "degree": degree},
				text:    strconv.Itoa(degree),
				headers: []string{"NODE", "DEGREE"},
				rows:    [][]string{{args[0], strconv.Itoa(degree)}},
			})
		},
	}
}

func graphPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find the shortest path between two proteins",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			svc, err := graphService()
			if err != nil {
				return err
			}

			result, err := svc.ShortestPath(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if !result.Found {
				return fmt.Errorf("%s -> %s: %w", args[0], args[1], models.ErrNoPath)
			}

			rows := make([][]string, 0, len(result.Path))
			for i, n := range result.Path {
				rows = append(rows, []string{strconv.Itoa(i), n})
			}

			return output(cmd.OutOrStdout(), view{
				value:   result,
				text:    strings.Join(result.Path, " -> "),
				headers: []string{"HOP", "NODE"},
				rows:    rows,
			})
		},
	}
}

func graphSubnetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subnet <seed> [seed...]",
		Short: "Extract the subnetwork reachable from the seeds",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			svc, err := graphService()
			if err != nil {
				return err
			}

			result, err := svc.Subnetwork(cmd.Context(), models.SubnetworkRequest{Seeds: args})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(result.Edges))
			for _, e := range result.Edges {
				rows = append(rows, []string{e.Source, e.Target, e.Kind, formatFloat(e.Weight)})
			}

			return output(cmd.OutOrStdout(), view{
				value:   result,
				text:    fmt.Sprintf("Nodes: %s\n%s", strings.Join(result.Nodes, " "), report.FormatInteractions(result.Edges)),
				headers: []string{"SOURCE", "TARGET", "KIND", "SCORE"},
				rows:    rows,
			})
		},
	}
}

func graphProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <id>",
		Short: "Show a protein with its attributes and typed interactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			svc, err := graphService()
			if err != nil {
				return err
			}

			p, err := svc.ProteinProfile(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("profile %s: %w", args[0], err)
			}

			rows := make([][]string, 0, len(p.Interactions))
			for _, i := range p.Interactions {
				rows = append(rows, []string{i.PartnerID, string(i.Type), formatFloat(i.BindingAffinity)})
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s (%s)\nDegree: %d\n", p.ID, p.Name, p.Degree)

			keys := make([]string, 0, len(p.Attributes))
			for k := range p.Attributes {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				fmt.Fprintf(&b, "%s: %s\n", k, p.Attributes[k])
			}
			for _, r := range rows {
				fmt.Fprintf(&b, "  %s %s %s\n", r[0], r[1], r[2])
			}

			return output(cmd.OutOrStdout(), view{
				value:   p,
				text:    b.String(),
				headers: []string{"PARTNER", "TYPE", "AFFINITY"},
				rows:    rows,
			})
		},
	}
}
