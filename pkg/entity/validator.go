package entity

import (
	"time"

	id "domainkit/pkg/domain"
	"domainkit/pkg/validation"
	"domainkit/pkg/validation/rules"
)

// BaseValidator validates the state every entity shares and then the rules a
// concrete validator adds through its configure hook. Base rules always come
// first; every rule runs.
type BaseValidator[T Entity] struct {
	rules *rules.Validator[T]
	specs *Specifications
}

// NewBaseValidator seeds the base rules and calls configure, when non-nil,
// to append the concrete entity's rules.
func NewBaseValidator[T Entity](specs *Specifications, configure func(v *rules.Validator[T])) *BaseValidator[T] {
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

// Rules lists the configured rules in evaluation order.
func (v *BaseValidator[T]) Rules() []rules.Descriptor {
	return v.rules.Rules()
}

func (v *BaseValidator[T]) Specifications() *Specifications {
	return v.specs
}

func (v *BaseValidator[T]) configureBaseRules() {
	specs, r := v.specs, v.rules

	createdBy := func(e T) string { return e.EntityBase().auditableInfo.createdBy }
	createdAt := func(e T) time.Time { return e.EntityBase().auditableInfo.createdAt }
	lastUpdatedBy := func(e T) *string { return e.EntityBase().auditableInfo.lastUpdatedBy }
	lastUpdatedAt := func(e T) *time.Time { return e.EntityBase().auditableInfo.lastUpdatedAt }
	lastSourcePlatform := func(e T) string { return e.EntityBase().auditableInfo.lastSourcePlatform }
	registryVersion := func(e T) time.Time { return e.EntityBase().registryVersion }

	rules.RuleFor(r, "Id", func(e T) id.EntityID { return e.EntityBase().id }).
		Must(specs.IDShouldRequired).
		WithFailure(ShouldHaveID)

	rules.RuleFor(r, "TenantId", func(e T) id.TenantID { return e.EntityBase().tenantID }).
		Must(specs.TenantIDShouldRequired).
		WithFailure(ShouldHaveTenantID)

	rules.RuleFor(r, "CreatedBy", createdBy).
		Must(specs.CreatedByShouldRequired).
		WithFailure(ShouldHaveCreatedBy)
	rules.RuleFor(r, "CreatedBy", createdBy).
		Must(specs.CreatedByShouldValid).
		When(func(e T) bool { return specs.CreatedByShouldRequired(createdBy(e)) }).
		WithFailure(ShouldHaveCreatedByWithValidLength)

	rules.RuleFor(r, "CreatedAt", createdAt).
		Must(specs.CreatedAtShouldRequired).
		WithFailure(ShouldHaveCreatedAt)
	rules.RuleFor(r, "CreatedAt", createdAt).
		Must(specs.CreatedAtShouldValid).
		When(func(e T) bool { return specs.CreatedAtShouldRequired(createdAt(e)) }).
		WithFailure(ShouldHaveValidCreatedAt)

	rules.RuleFor(r, "LastUpdatedBy", lastUpdatedBy).
		Must(specs.LastUpdatedByShouldValid).
		When(func(e T) bool { return specs.LastUpdatedByShouldRequired(lastUpdatedBy(e)) }).
		WithFailure(ShouldHaveLastUpdatedByWithValidLength)

	rules.RuleFor(r, "LastUpdatedAt", lastUpdatedAt).
		MustWith(func(e T, at *time.Time) bool { return specs.LastUpdatedAtShouldValid(at, createdAt(e)) }).
		When(func(e T) bool { return specs.LastUpdatedAtShouldRequired(lastUpdatedAt(e)) }).
		WithFailure(ShouldHaveValidLastUpdatedAt)

	rules.RuleFor(r, "LastSourcePlatform", lastSourcePlatform).
		Must(specs.LastSourcePlatformShouldRequired).
		WithFailure(ShouldHaveLastSourcePlatform)
	rules.RuleFor(r, "LastSourcePlatform", lastSourcePlatform).
		Must(specs.LastSourcePlatformShouldValid).
		When(func(e T) bool { return specs.LastSourcePlatformShouldRequired(lastSourcePlatform(e)) }).
		WithFailure(ShouldHaveLastSourcePlatformWithValidLength)

	rules.RuleFor(r, "RegistryVersion", registryVersion).
		Must(specs.RegistryVersionShouldRequired).
		WithFailure(ShouldHaveRegistryVersion)
	rules.RuleFor(r, "RegistryVersion", registryVersion).
		Must(specs.RegistryVersionShouldValid).
		When(func(e T) bool { return specs.RegistryVersionShouldRequired(registryVersion(e)) }).
		WithFailure(ShouldHaveValidRegistryVersion)
}
