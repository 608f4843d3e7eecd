package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

const sampleCSV = `source,target,kind,weight
MCL1,BAK,binding,0.9
BAK,BAX,binding,0.7
NOXA,MCL1,inhibition,0.85
X,Y,activation,0.4
`

func writeSample(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "interactions.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatalf("writing sample: %v", err)
	}

	return path
}

// setEnv temporarily sets an environment variable and restores it on cleanup.
func setEnv(t *testing.T, key, val string) {
	t.Helper()
	prev, exists := os.LookupEnv(key)
	os.Setenv(key, val)
	t.Cleanup(func() {
		if exists {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestAnalyze_Text(t *testing.T) {
	stdout, _, err := executeArgs(t, "analyze", writeSample(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Analysis Summary:", "Total Interactions: 4", "MCL1 <-> BAK (score: 0.900)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestAnalyze_JSON(t *testing.T) {
	stdout, _, err := executeArgs(t, "analyze", writeSample(t), "--format", "json", "--top", "1", "--min-confidence", "0.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var report models.AnalysisReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}

	if report.Stats.EdgeCount != 4 || len(report.Hubs) != 1 || len(report.ConfidentInteractions) != 3 {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestAnalyze_Table(t *testing.T) {
	stdout, _, err := executeArgs(t, "analyze", writeSample(t), "--format", "table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(stdout, "SOURCE") || !strings.Contains(stdout, "NOXA") {
		t.Errorf("unexpected table:\n%s", stdout)
	}
}

func TestAnalyze_MissingFile(t *testing.T) {
	stdout, _, err := executeArgs(t, "analyze", filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("expected error for missing input")
	}

	if strings.Contains(stdout, "Usage:") {
		t.Errorf("runtime errors should not print usage:\n%s", stdout)
	}
}

func TestAnalyze_ScoringConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "scoring.yaml")
	if err := os.WriteFile(cfgPath, []byte("pathway:\n  activation_threshold: 2\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, _, err := executeArgs(t, "analyze", writeSample(t), "--scoring-config", cfgPath)
	if err == nil {
		t.Fatal("expected invalid scoring config to fail")
	}
}

func TestSetup_EnvLogLevel(t *testing.T) {
	setEnv(t, "LOG_LEVEL", "debug")

	if _, _, err := executeArgs(t, "analyze", writeSample(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
}

func TestPredict_JSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "prediction.json")

	_, stderr, err := executeArgs(t, "predict", "-i", writeSample(t), "-o", out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stderr, "Total Interactions: 4") || !strings.Contains(stderr, "Predicted Drug Targets: 1") {
		t.Errorf("summary missing from stderr:\n%s", stderr)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var report models.PredictionReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if report.Prediction.RunID == "" || len(report.ProteinScores) != 3 {
		t.Errorf("unexpected prediction: %+v", report)
	}
}

func TestPredict_Workbook(t *testing.T) {
	out := filepath.Join(t.TempDir(), "prediction.xlsx")

	if _, _, err := executeArgs(t, "predict", "--input", writeSample(t), "--output", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected workbook at %s: %v", out, err)
	}
}

func TestGraphCommands(t *testing.T) {
	input := writeSample(t)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{name: "neighbors", args: []string{"graph", "neighbors", "MCL1"}, want: "BAK\nNOXA\n"},
		{name: "degree", args: []string{"graph", "degree", "BAK"}, want: "2\n"},
		{name: "path", args: []string{"graph", "path", "NOXA", "BAX"}, want: "NOXA -> MCL1 -> BAK -> BAX\n"},
		{name: "no path", args: []string{"graph", "path", "MCL1", "Y"}, wantErr: "no path found"},
		{name: "subnet", args: []string{"graph", "subnet", "X"}, want: "Nodes: X Y\n"},
		{name: "profile", args: []string{"graph", "profile", "MCL1", "--format", "table"}, want: "PARTNER"},
		{name: "unknown node", args: []string{"graph", "neighbors", "NOPE"}, wantErr: "node not found"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := executeArgs(t, append(tc.args, "--input", input)...)

			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.Contains(stdout, tc.want) {
				t.Errorf("output %q missing %q", stdout, tc.want)
			}
		})
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	logger = logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := serve(ctx, "127.0.0.1:0", nil); err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}
