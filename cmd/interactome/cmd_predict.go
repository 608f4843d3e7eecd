package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GiulianoDami/MCL1-Regulator/internal/report"
	"github.com/GiulianoDami/MCL1-Regulator/internal/service"
)

func newPredictCmd() *cobra.Command {
	var input, outputPath, attributes string

	cmd := &cobra.Command{
		Use:   "predict -i <input_file> -o <output_file>",
		Short: "Predict active pathways and write the result",
		Long: `Score every interaction kind as a pathway channel, keep the pathways above the
activation threshold, and write the prediction with per-protein scores to the
output file. Files ending in .xlsx are written as workbooks, anything else as
JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			net, err := loadNetwork(input, attributes)
			if err != nil {
				return err
			}

			svc := service.NewAnalysisService(net, scoringCfg, logger)

			result, err := svc.Predict(cmd.Context())
			if err != nil {
				return err
			}

			if err := report.WritePrediction(outputPath, result); err != nil {
				return err
			}

			logger.WithFields(logrus.Fields{
				"run_id": result.Prediction.RunID,
				"output": outputPath,
			}).Info("prediction written")

			fmt.Fprint(cmd.ErrOrStderr(), report.FormatSummary(
				net.EdgeCount(),
				len(result.Prediction.PredictedPathways),
				len(svc.DrugTargets(cmd.Context())),
			))

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Interaction file (CSV or XLSX)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (.json or .xlsx)")
	cmd.Flags().StringVar(&attributes, "attributes", "", "Node attribute CSV (node,key,value)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
