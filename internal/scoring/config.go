// Package scoring derives cardiotoxicity, pathway activation and drug target
// scores from the edges of an interaction network. All constants come from an
// explicit Config.
package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GiulianoDami/MCL1-Regulator/internal/models"
)

// Graph is the read-only surface scoring needs from a network.
type Graph interface {
	Edges() []models.Interaction
	NodeCount() int
}

// Config holds every tunable scoring parameter.
type Config struct {
	Pathway        PathwayConfig        `yaml:"pathway" json:"pathway"`
	Cardiotoxicity CardiotoxicityConfig `yaml:"cardiotoxicity" json:"cardiotoxicity"`
	Drug           DrugConfig           `yaml:"drug" json:"drug"`
}

// PathwayConfig parameterises pathway activation.
type PathwayConfig struct {
	ActivationThreshold float64 `yaml:"activation_threshold" json:"activation_threshold"`
	MetabolismWeight    float64 `yaml:"metabolism_weight" json:"metabolism_weight"`
	InteractionWeight   float64 `yaml:"interaction_weight" json:"interaction_weight"`
}

// CardiotoxicityConfig maps proteins to base risk scores.
type CardiotoxicityConfig struct {
	BaseScores   map[string]float64 `yaml:"base_scores" json:"base_scores"`
	DefaultScore float64            `yaml:"default_score" json:"default_score"`
	WeightFactor float64            `yaml:"weight_factor" json:"weight_factor"`
}

// DrugConfig holds the drug candidate classification thresholds.
type DrugConfig struct {
	SafetyThreshold      float64 `yaml:"safety_threshold" json:"safety_threshold"`
	SelectivityThreshold float64 `yaml:"selectivity_threshold" json:"selectivity_threshold"`
}

// DefaultConfig returns the parameters the analysis has always shipped with.
func DefaultConfig() Config {
	return Config{
		Pathway: PathwayConfig{
			ActivationThreshold: 0.7,
			MetabolismWeight:    0.8,
			InteractionWeight:   0.6,
		},
		Cardiotoxicity: CardiotoxicityConfig{
			BaseScores: map[string]float64{
				"MCL1":  0.7,
				"BCL2":  0.5,
				"KCNH2": 0.9,
				"HERG":  0.9,
			},
			DefaultScore: 0.3,
			WeightFactor: 0.5,
		},
		Drug: DrugConfig{
			SafetyThreshold:      0.3,
			SelectivityThreshold: 0.8,
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys absent from the
// file keep their defaults; base_scores entries are merged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading scoring config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing scoring config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("scoring config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks that scores and thresholds lie in [0,1] and weights are non-negative.
func (c Config) Validate() error {
	unit := map[string]float64{
		"pathway.activation_threshold": c.Pathway.ActivationThreshold,
		"cardiotoxicity.default_score": c.Cardiotoxicity.DefaultScore,
		"cardiotoxicity.weight_factor": c.Cardiotoxicity.WeightFactor,
		"drug.safety_threshold":        c.Drug.SafetyThreshold,
		"drug.selectivity_threshold":   c.Drug.SelectivityThreshold,
	}

	for name, v := range unit {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %g", name, v)
		}
	}

	for protein, v := range c.Cardiotoxicity.BaseScores {
		if v < 0 || v > 1 {
			return fmt.Errorf("cardiotoxicity.base_scores[%s] must be between 0 and 1, got %g", protein, v)
		}
	}

	if c.Pathway.MetabolismWeight < 0 || c.Pathway.InteractionWeight < 0 {
		return fmt.Errorf("pathway weights must not be negative")
	}

	return nil
}
