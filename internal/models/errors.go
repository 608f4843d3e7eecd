package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrMissingSeeds   = errors.New("at least one seed is required")
	ErrEmptySeed      = errors.New("seed must not be empty")
)

// Sentinel errors for lookups.
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrNoPath       = errors.New("no path found")
)

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
