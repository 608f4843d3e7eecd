package config

// Version is the interactome binary version.
// Set at build time via: -ldflags "-X github.com/GiulianoDami/MCL1-Regulator/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
