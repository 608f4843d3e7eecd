package main

import (
	"github.com/GiulianoDami/MCL1-Regulator/internal/network"
	"github.com/GiulianoDami/MCL1-Regulator/internal/service"
)

// loadNetwork reads the interaction file and optional attribute file.
func loadNetwork(interactions, attributes string) (*network.Network, error) {
	return service.LoadNetwork(interactions, attributes, logger)
}
