package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/katalvlaran/triad/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "run.population")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// maxPopulation keeps a single run within a few hundred MB of candidate queues
const maxPopulation = 300

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateRun()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateMetrics()...)

	return errors
}

func (c *Config) validateRun() []ValidationError {
	var errors []ValidationError

	if c.Run.Population <= 0 || c.Run.Population%3 != 0 {
		errors = append(errors, ValidationError{
			Field:   "run.population",
			Value:   c.Run.Population,
			Message: "must be a positive multiple of 3",
		})
	} else if c.Run.Population > maxPopulation {
		errors = append(errors, ValidationError{
			Field:   "run.population",
			Value:   c.Run.Population,
			Message: fmt.Sprintf("exceeds maximum of %d", maxPopulation),
		})
	}

	if c.Run.MaxProposals < 0 {
		errors = append(errors, ValidationError{
			Field:   "run.max_proposals",
			Value:   c.Run.MaxProposals,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level == "" {
		return errors
	}
	valid := logging.ValidLevels()
	known := slices.ContainsFunc(valid, func(level string) bool {
		return strings.EqualFold(level, c.Logging.Level)
	})
	if !known {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.ToLower(strings.Join(valid, ", "))),
		})
	}

	return errors
}

func (c *Config) validateMetrics() []ValidationError {
	var errors []ValidationError

	if c.Metrics.Textfile != "" && !strings.HasSuffix(filepath.Base(c.Metrics.Textfile), ".prom") {
		errors = append(errors, ValidationError{
			Field:   "metrics.textfile",
			Value:   c.Metrics.Textfile,
			Message: "must end in .prom",
		})
	}

	return errors
}
