package input

import (
	id "domainkit/pkg/domain"
	"domainkit/pkg/validation"
	"domainkit/pkg/validation/rules"
)

// BaseValidator validates the envelope fields and then whatever the concrete
// input's configure hook adds.
type BaseValidator[T Input] struct {
	rules *rules.Validator[T]
	specs *Specifications
}

func NewBaseValidator[T Input](specs *Specifications, configure func(v *rules.Validator[T])) *BaseValidator[T] {
	if specs == nil {
		specs = NewSpecifications()
	}
	v := &BaseValidator[T]{rules: rules.New[T](), specs: specs}
	v.configureBaseRules()
	if configure != nil {
		configure(v.rules)
	}
	return v
}

func (v *BaseValidator[T]) Validate(candidate T) validation.Result {
	return v.rules.Validate(candidate)
}

func (v *BaseValidator[T]) Rules() []rules.Descriptor {
	return v.rules.Rules()
}

func (v *BaseValidator[T]) configureBaseRules() {
	specs, r := v.specs, v.rules

	executionUser := func(in T) string { return in.InputBase().executionUser }
	sourcePlatform := func(in T) string { return in.InputBase().sourcePlatform }

	rules.RuleFor(r, "TenantId", func(in T) id.TenantID { return in.InputBase().tenantID }).
		Must(specs.TenantIDShouldRequired).
		WithFailure(ShouldHaveTenantID)

	rules.RuleFor(r, "ExecutionUser", executionUser).
		Must(specs.ExecutionUserShouldRequired).
		WithFailure(ShouldHaveExecutionUser)
	rules.RuleFor(r, "ExecutionUser", executionUser).
		Must(specs.ExecutionUserShouldValid).
		When(func(in T) bool { return specs.ExecutionUserShouldRequired(executionUser(in)) }).
		WithFailure(ShouldHaveExecutionUserWithValidLength)

	rules.RuleFor(r, "SourcePlatform", sourcePlatform).
		Must(specs.SourcePlatformShouldRequired).
		WithFailure(ShouldHaveSourcePlatform)
	rules.RuleFor(r, "SourcePlatform", sourcePlatform).
		Must(specs.SourcePlatformShouldValid).
		When(func(in T) bool { return specs.SourcePlatformShouldRequired(sourcePlatform(in)) }).
		WithFailure(ShouldHaveSourcePlatformWithValidLength)

	rules.RuleFor(r, "CorrelationId", func(in T) id.CorrelationID { return in.InputBase().correlationID }).
		Must(specs.CorrelationIDShouldRequired).
		WithFailure(ShouldHaveCorrelationID)
}
