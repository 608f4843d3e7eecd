package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GiulianoDami/MCL1-Regulator/internal/config"
	"github.com/GiulianoDami/MCL1-Regulator/internal/scoring"
)

// Build-time variables set via ldflags.
var (
	commit    = ""
	buildDate = ""
)

var (
	flagFmt           string
	flagLogLevel      string
	flagLogFormat     string
	flagScoringConfig string

	logger     *logrus.Logger
	scoringCfg scoring.Config
)

var errNoCommand = errors.New("no command given")

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("interactome version %s (commit: %s, built: %s)", config.Version, commit, buildDate)
	}
	return fmt.Sprintf("interactome version %s", config.Version)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "interactome",
		Short:   "MCL1 protein interaction network analysis",
		Version: versionString(),
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		RunE: runRoot,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&flagFmt, "format", "text", "Output format: text|json|table")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (env: LOG_LEVEL)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format: text|json (env: LOG_FORMAT)")
	root.PersistentFlags().StringVar(&flagScoringConfig, "scoring-config", "", "YAML scoring parameters (env: SCORING_CONFIG)")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newPredictCmd())
	root.AddCommand(newInteractiveCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newServeCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// runRoot handles invocations without a known subcommand.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Usage()
		cmd.SilenceUsage = true

		return errNoCommand
	}

	cmd.SilenceUsage = true

	return fmt.Errorf("unknown command %q\nAvailable commands: %s", args[0], strings.Join(commandNames(cmd), ", "))
}

func commandNames(root *cobra.Command) []string {
	var names []string
	for _, c := range root.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	return names
}

// setup resolves logging and scoring configuration. Flags take precedence,
// then the environment.
func setup(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("log-level") {
		if v := os.Getenv("LOG_LEVEL"); v != "" {
			flagLogLevel = v
		}
	}
	if !cmd.Flags().Changed("log-format") {
		if v := os.Getenv("LOG_FORMAT"); v != "" {
			flagLogFormat = v
		}
	}
	if flagScoringConfig == "" {
		flagScoringConfig = os.Getenv("SCORING_CONFIG")
	}

	switch flagFmt {
	case "text", "json", "table":
	default:
		return fmt.Errorf("unknown format %q (want text, json or table)", flagFmt)
	}

	log, err := config.NewLogger(cmd.ErrOrStderr(), flagLogLevel, flagLogFormat)
	if err != nil {
		return err
	}
	logger = log

	scoringCfg = scoring.DefaultConfig()
	if flagScoringConfig != "" {
		cfg, err := scoring.LoadConfig(flagScoringConfig)
		if err != nil {
			return err
		}
		scoringCfg = cfg
	}

	return nil
}
