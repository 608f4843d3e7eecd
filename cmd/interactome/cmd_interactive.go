package main

import (
	"github.com/spf13/cobra"

	"github.com/GiulianoDami/MCL1-Regulator/internal/interactive"
)

func newInteractiveCmd() *cobra.Command {
	var input, attributes string

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Explore a network in an interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			session := interactive.NewSession(scoringCfg, loadNetwork, logger)

			if input != "" {
				net, err := loadNetwork(input, attributes)
				if err != nil {
					return err
				}
				session.Use(net)
			}

			session.Run(cmd.Context(), cmd.OutOrStdout())

			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Interaction file to load on start")
	cmd.Flags().StringVar(&attributes, "attributes", "", "Node attribute CSV (node,key,value)")

	return cmd
}
