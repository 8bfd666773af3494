package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	dErrors "domainkit/pkg/domain-errors"
	"domainkit/pkg/validation"
)

const (
	ClockSystem = "system"
	ClockFixed  = "fixed"
)

// Config captures process level settings for the entitycheck tooling.
type Config struct {
	LogLevel    string `validate:"required,oneof=debug info warn error"`
	Clock       string `validate:"required,oneof=system fixed"`
	FixedTime   time.Time
	MetricsFile string
	Concurrency int `validate:"min=1,max=64"`
}

// DefaultConcurrency bounds how many batch files are checked at once.
var DefaultConcurrency = 4

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup is FromEnv with an injectable source, used by tests.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		LogLevel:    get("DOMAINKIT_LOG_LEVEL", "info"),
		Clock:       get("DOMAINKIT_CLOCK", ClockSystem),
		MetricsFile: get("DOMAINKIT_METRICS_FILE", ""),
		Concurrency: DefaultConcurrency,
	}

	if raw := get("DOMAINKIT_CONCURRENCY", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "DOMAINKIT_CONCURRENCY must be an integer")
		}
		cfg.Concurrency = n
	}

	if raw := get("DOMAINKIT_FIXED_TIME", ""); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return Config{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "DOMAINKIT_FIXED_TIME must be RFC3339")
		}
		cfg.FixedTime = t.UTC()
	}

	if err := validation.Validate(cfg); err != nil {
		return Config{}, err
	}
	if cfg.Clock == ClockFixed && cfg.FixedTime.IsZero() {
		return Config{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("DOMAINKIT_FIXED_TIME is required when DOMAINKIT_CLOCK=%s", ClockFixed))
	}
	return cfg, nil
}
