// Package bootstrap wires the shared dependencies a binary needs from its
// configuration.
package bootstrap

import (
	"log/slog"

	customerservice "domainkit/internal/customer/service"
	"domainkit/internal/platform/config"
	"domainkit/internal/platform/logger"
	"domainkit/internal/platform/metrics"
	"domainkit/internal/platform/tracer"
	"domainkit/pkg/clock"
	"domainkit/pkg/entity"
	"domainkit/pkg/input"
)

// Container holds one instance of each collaborator. Specifications are
// stateless apart from the clock, so they are shared by every validator.
type Container struct {
	Config      config.Config
	Clock       clock.Clock
	EntitySpecs *entity.Specifications
	InputSpecs  *input.Specifications
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Tracer      tracer.Tracer
	Customers   *customerservice.Service
}

type Option func(c *Container)

// WithClock overrides the clock selected by the configuration.
func WithClock(clk clock.Clock) Option {
	return func(c *Container) {
		c.Clock = clk
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Container) {
		c.Logger = log
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *Container) {
		c.Tracer = t
	}
}

func New(cfg config.Config, opts ...Option) *Container {
	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.Clock == nil {
		c.Clock = ClockFor(cfg)
	}
	if c.Logger == nil {
		c.Logger = logger.New(cfg.LogLevel)
	}
	if c.Tracer == nil {
		c.Tracer = tracer.NewOTel()
	}
	c.Metrics = metrics.New()
	c.EntitySpecs = entity.NewSpecifications(c.Clock)
	c.InputSpecs = input.NewSpecifications()
	c.Customers = customerservice.New(c.Clock, c.EntitySpecs, c.InputSpecs,
		customerservice.WithLogger(c.Logger),
		customerservice.WithMetrics(c.Metrics),
		customerservice.WithTracer(c.Tracer),
	)
	return c
}

func ClockFor(cfg config.Config) clock.Clock {
	if cfg.Clock == config.ClockFixed {
		return clock.NewFixed(cfg.FixedTime)
	}
	return clock.System{}
}
