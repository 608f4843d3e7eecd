package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/GiulianoDami/MCL1-Regulator/internal/loader"
	"github.com/GiulianoDami/MCL1-Regulator/internal/metrics"
	"github.com/GiulianoDami/MCL1-Regulator/internal/network"
)

// LoadNetwork reads an interaction file and an optional attribute file and
// builds the network. Row outcomes are logged and counted.
func LoadNetwork(interactionsPath, attributesPath string, log *logrus.Logger) (*network.Network, error) {
	interactions, stats, err := loader.LoadInteractionsFile(interactionsPath)
	if err != nil {
		return nil, fmt.Errorf("loading interactions: %w", err)
	}

	recordLoad(log, interactionsPath, stats)

	var attributes []loader.Attribute
	if attributesPath != "" {
		var attrStats loader.Stats

		attributes, attrStats, err = loader.LoadAttributesFile(attributesPath)
		if err != nil {
			return nil, fmt.Errorf("loading attributes: %w", err)
		}

		recordLoad(log, attributesPath, attrStats)
	}

	net := loader.BuildNetwork(interactions, attributes)

	metrics.NodeCount.Set(float64(net.NodeCount()))
	metrics.EdgeCount.Set(float64(net.EdgeCount()))

	log.WithFields(logrus.Fields{
		"nodes": net.NodeCount(),
		"edges": net.EdgeCount(),
	}).Info("network loaded")

	return net, nil
}

func recordLoad(log *logrus.Logger, path string, stats loader.Stats) {
	metrics.LoadedRows.WithLabelValues("kept").Add(float64(stats.Kept))
	metrics.LoadedRows.WithLabelValues("dropped").Add(float64(stats.Dropped))
	metrics.LoadedRows.WithLabelValues("defaulted_weight").Add(float64(stats.DefaultedWeights))

	entry := log.WithFields(logrus.Fields{
		"path":              path,
		"rows":              stats.Rows,
		"kept":              stats.Kept,
		"dropped":           stats.Dropped,
		"defaulted_weights": stats.DefaultedWeights,
	})

	if stats.Dropped > 0 {
		entry.Warn("dropped malformed rows")
		return
	}

	entry.Debug("rows loaded")
}
