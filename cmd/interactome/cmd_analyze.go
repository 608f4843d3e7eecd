package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
	"github.com/GiulianoDami/MCL1-Regulator/internal/report"
	"github.com/GiulianoDami/MCL1-Regulator/internal/service"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		attributes    string
		minConfidence float64
		top           int
	)

	cmd := &cobra.Command{
		Use:   "analyze <input_file>",
		Short: "Analyze an interaction network",
		Long: `Load an interaction table (CSV with a source,target,kind,weight header, or
the first sheet of an XLSX workbook) and report hub proteins, cardiotoxicity
risk, active pathways, drug target candidates and high-confidence interactions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if math.IsNaN(minConfidence) || minConfidence < 0 || minConfidence > 1 {
				return fmt.Errorf("--min-confidence must be between 0 and 1")
			}

			net, err := loadNetwork(args[0], attributes)
			if err != nil {
				return err
			}

			svc := service.NewAnalysisService(net, scoringCfg, logger)

			result, err := svc.Analyze(cmd.Context(), minConfidence, top)
			if err != nil {
				return err
			}

			return output(cmd.OutOrStdout(), analysisView(result))
		},
	}

	cmd.Flags().StringVar(&attributes, "attributes", "", "Node attribute CSV (node,key,value)")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.8, "Minimum interaction score to list")
	cmd.Flags().IntVar(&top, "top", 5, "Number of hub proteins to report")

	return cmd
}

func analysisView(r *models.AnalysisReport) view {
	rows := make([][]string, 0, len(r.ConfidentInteractions))
	for _, i := range r.ConfidentInteractions {
		rows = append(rows, []string{i.Source, i.Target, i.Kind, formatFloat(i.Weight)})
	}

	return view{
		value:   r,
		text:    report.FormatAnalysis(r),
		headers: []string{"SOURCE", "TARGET", "KIND", "SCORE"},
		rows:    rows,
	}
}
