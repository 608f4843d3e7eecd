package api

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/GiulianoDami/MCL1-Regulator/internal/middleware"
)

// maxIDLength bounds protein ids accepted in paths and payloads.
const maxIDLength = 255

// maxTopHubs caps the number of hubs a single analysis request may ask for.
const maxTopHubs = 100

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	}
}

// validatePathID checks that a path parameter ID is non-empty and within length limits.
func validatePathID(id string) error {
	if id == "" {
		return fmt.Errorf("id must not be empty")
	}
	if len(id) > maxIDLength {
		return fmt.Errorf("id exceeds maximum length of %d", maxIDLength)
	}
	return nil
}

// parseTop parses a positive hub count, capped at maxTopHubs.
func parseTop(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("top must be a positive integer")
	}

	if v > maxTopHubs {
		return maxTopHubs, nil
	}

	return v, nil
}

// parseConfidence parses a confidence in [0,1].
func parseConfidence(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > 1 {
		return 0, fmt.Errorf("min_confidence must be a number between 0 and 1")
	}

	return v, nil
}
