package service

import (
	"context"
	"log/slog"
	"time"

	"domainkit/internal/customer/models"
	"domainkit/internal/platform/logger"
	"domainkit/internal/platform/metrics"
	"domainkit/internal/platform/tracer"
	"domainkit/pkg/clock"
	dErrors "domainkit/pkg/domain-errors"
	"domainkit/pkg/entity"
	"domainkit/pkg/input"
	"domainkit/pkg/validation"
)

// Subject kinds used for metrics and span attributes.
const (
	KindCustomer        = "customer"
	KindRegisterInput   = "register_customer_input"
	KindChangeNameInput = "change_customer_name_input"
)

// Service applies customer commands. Invalid commands are not errors: the
// returned customer carries the validation messages and the caller decides
// what to do with them. Errors are reserved for broken preconditions.
type Service struct {
	clock           clock.Clock
	events          *models.EventFactory
	customerRules   *entity.BaseValidator[*models.Customer]
	registerRules   *input.BaseValidator[models.RegisterCustomerInput]
	changeNameRules *input.BaseValidator[models.ChangeCustomerNameInput]
	logger          *slog.Logger
	metrics         *metrics.Metrics
	tracer          tracer.Tracer
}

func New(clk clock.Clock, entitySpecs *entity.Specifications, inputSpecs *input.Specifications, opts ...Option) *Service {
	if clk == nil {
		panic(dErrors.New(dErrors.CodeMissingDependency, "customer service requires a clock"))
	}
	if entitySpecs == nil {
		entitySpecs = entity.NewSpecifications(clk)
	}
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.Discard()
	}
	if cfg.tracer == nil {
		cfg.tracer = tracer.NewNoop()
	}
	return &Service{
		clock:           clk,
		events:          models.NewEventFactory(clk),
		customerRules:   models.NewValidator(entitySpecs),
		registerRules:   models.NewRegisterCustomerInputValidator(inputSpecs),
		changeNameRules: models.NewChangeCustomerNameInputValidator(inputSpecs),
		logger:          cfg.logger,
		metrics:         cfg.metrics,
		tracer:          cfg.tracer,
	}
}

// Register validates the input and, when it is valid, registers a new
// customer and validates the resulting entity. On invalid input the customer
// stays unregistered and carries the input messages.
func (s *Service) Register(ctx context.Context, in models.RegisterCustomerInput) (c *models.Customer, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanRegisterCustomer,
		tracer.String(tracer.AttrTenantID, in.TenantID().String()),
		tracer.String(tracer.AttrCorrelationID, in.CorrelationID().String()),
		tracer.String(tracer.AttrExecutionUserHash, tracer.HashUser(in.ExecutionUser())),
	)
	defer func() { span.End(err) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c = models.NewCustomer(s.clock)
	inputResult := s.validate(KindRegisterInput, func() validation.Result { return s.registerRules.Validate(in) })
	if !inputResult.IsValid() {
		c.AddFromValidationResult(inputResult)
		s.rejected(ctx, span, KindRegisterInput, in.Base, inputResult)
		return c, nil
	}

	c.RegisterNew(in, s.events)
	valid := c.Validate(func() validation.Result {
		return s.validate(KindCustomer, func() validation.Result { return s.customerRules.Validate(c) })
	})
	span.SetAttributes(tracer.Bool(tracer.AttrValid, valid))
	if valid && s.metrics != nil {
		s.metrics.IncrementCustomersRegistered()
	}

	s.logger.InfoContext(ctx, "customer registered",
		"customer_id", c.ID().String(),
		"tenant_id", c.TenantID().String(),
		"correlation_id", in.CorrelationID().String(),
		"valid", valid,
	)
	return c, nil
}

// ChangeName applies a rename to a copy of c, so the caller's instance is
// left untouched whatever the outcome. On invalid input the copy is returned
// unmodified apart from the input messages.
func (s *Service) ChangeName(ctx context.Context, c *models.Customer, in models.ChangeCustomerNameInput) (*models.Customer, error) {
	if c == nil || !c.IsRegistered() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "only registered customers can be renamed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clone := c.DeepClone()
	inputResult := s.validate(KindChangeNameInput, func() validation.Result { return s.changeNameRules.Validate(in) })
	if !inputResult.IsValid() {
		clone.AddFromValidationResult(inputResult)
		s.logger.InfoContext(ctx, "customer rename rejected",
			"customer_id", c.ID().String(),
			"messages", inputResult.Len(),
		)
		return clone, nil
	}
	if in.CustomerID != c.ID() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "input references a different customer")
	}
	if in.TenantID() != c.TenantID() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "input targets a different tenant")
	}

	clone.ChangeName(in, s.events)
	valid := clone.Validate(func() validation.Result {
		return s.validate(KindCustomer, func() validation.Result { return s.customerRules.Validate(clone) })
	})
	s.logger.InfoContext(ctx, "customer renamed",
		"customer_id", clone.ID().String(),
		"registry_version", clone.RegistryVersion().Format(time.RFC3339Nano),
		"valid", valid,
	)
	return clone, nil
}

// ValidateCustomer runs the customer rules without changing the entity.
func (s *Service) ValidateCustomer(c *models.Customer) validation.Result {
	return s.validate(KindCustomer, func() validation.Result { return s.customerRules.Validate(c) })
}

func (s *Service) validate(kind string, run func() validation.Result) validation.Result {
	started := time.Now()
	r := run()
	if s.metrics != nil {
		s.metrics.ObserveValidationLatency(kind, time.Since(started).Seconds())
		s.metrics.RecordValidation(kind, r.Messages())
	}
	return r
}

func (s *Service) rejected(ctx context.Context, span tracer.Span, kind string, envelope input.Base, r validation.Result) {
	span.SetAttributes(tracer.Bool(tracer.AttrValid, false), tracer.Int(tracer.AttrMessageCount, r.Len()))
	span.AddEvent(tracer.EventValidationFailed, tracer.String(tracer.AttrSubjectKind, kind))

	codes := make([]string, 0, r.Len())
	for _, m := range r.Messages() {
		codes = append(codes, m.Code())
	}
	s.logger.InfoContext(ctx, "input rejected",
		"kind", kind,
		"tenant_id", envelope.TenantID().String(),
		"correlation_id", envelope.CorrelationID().String(),
		"codes", codes,
	)
}
