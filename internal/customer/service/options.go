package service

import (
	"log/slog"

	"domainkit/internal/platform/metrics"
	"domainkit/internal/platform/tracer"
)

// serviceConfig holds optional dependencies for the service.
type serviceConfig struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  tracer.Tracer
}

// Option configures a service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = t
	}
}
