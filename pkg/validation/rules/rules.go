// Package rules is a small declarative rule engine. A Validator holds an
// ordered list of rules; each rule binds a field accessor, a boolean predicate,
// an optional guard and the code, message and severity reported when the
// predicate fails.
//
// Rules are evaluated independently and in declaration order. A failing rule
// never stops the ones after it, so a single pass surfaces every finding.
//
// Example:
//
//	v := rules.New[*Customer]()
//	rules.RuleFor(v, "Name", func(c *Customer) string { return c.Name }).
//		Must(specs.NameShouldRequired).
//		WithErrorCode("CustomerShouldHaveName").
//		WithMessage("Customer should have name")
//	result := v.Validate(customer)
package rules

import (
	"domainkit/pkg/validation"
)

// Validator evaluates an ordered rule set against candidates of type T.
// A fully configured Validator is read-only and safe for concurrent use.
type Validator[T any] struct {
	rules []*rule[T]
}

func New[T any]() *Validator[T] {
	return &Validator[T]{}
}

// Validate runs every rule against candidate and returns one message per
// failing rule, in rule order. Rules whose guard is false are skipped.
func (v *Validator[T]) Validate(candidate T) validation.Result {
	var failures []validation.Message
	for _, r := range v.rules {
		if r.guard != nil && !r.guard(candidate) {
			continue
		}
		if r.predicate(candidate) {
			continue
		}
		failures = append(failures, validation.NewMessage(r.severity, r.code, r.message))
	}
	return validation.NewResult(failures...)
}

// Len returns the number of configured rules.
func (v *Validator[T]) Len() int { return len(v.rules) }

// Descriptor describes a configured rule without exposing its functions.
type Descriptor struct {
	Field    string
	Code     string
	Message  string
	Severity validation.Severity
	Guarded  bool
}

// Rules lists the configured rules in evaluation order.
func (v *Validator[T]) Rules() []Descriptor {
	out := make([]Descriptor, 0, len(v.rules))
	for _, r := range v.rules {
		out = append(out, Descriptor{
			Field:    r.field,
			Code:     r.code,
			Message:  r.message,
			Severity: r.severity,
			Guarded:  r.guard != nil,
		})
	}
	return out
}

type rule[T any] struct {
	field     string
	predicate func(T) bool
	guard     func(T) bool
	code      string
	message   string
	severity  validation.Severity
}

// Field binds a named accessor on T. Each Must call on it adds a new rule.
type Field[T, F any] struct {
	validator *Validator[T]
	name      string
	accessor  func(T) F
}

// RuleFor starts a rule group for the value returned by accessor.
func RuleFor[T, F any](v *Validator[T], name string, accessor func(T) F) *Field[T, F] {
	return &Field[T, F]{validator: v, name: name, accessor: accessor}
}

// Must adds a rule that fails when predicate returns false for the field value.
func (f *Field[T, F]) Must(predicate func(F) bool) *Builder[T] {
	accessor := f.accessor
	return f.add(func(candidate T) bool { return predicate(accessor(candidate)) })
}

// MustWith adds a rule whose predicate also sees the whole candidate, for
// checks that relate the field to another one.
func (f *Field[T, F]) MustWith(predicate func(T, F) bool) *Builder[T] {
	accessor := f.accessor
	return f.add(func(candidate T) bool { return predicate(candidate, accessor(candidate)) })
}

func (f *Field[T, F]) add(predicate func(T) bool) *Builder[T] {
	r := &rule[T]{
		field:     f.name,
		predicate: predicate,
		code:      f.name + "Invalid",
		message:   f.name + " is invalid",
		severity:  validation.SeverityError,
	}
	f.validator.rules = append(f.validator.rules, r)
	return &Builder[T]{rule: r}
}

// Failure bundles what a rule reports when its predicate fails.
type Failure struct {
	Code     string
	Message  string
	Severity validation.Severity
}

// Builder configures the rule most recently added by Must or MustWith.
type Builder[T any] struct {
	rule *rule[T]
}

// When makes the rule conditional: the predicate is evaluated only when guard
// holds for the candidate.
func (b *Builder[T]) When(guard func(T) bool) *Builder[T] {
	b.rule.guard = guard
	return b
}

func (b *Builder[T]) WithErrorCode(code string) *Builder[T] {
	b.rule.code = code
	return b
}

func (b *Builder[T]) WithMessage(message string) *Builder[T] {
	b.rule.message = message
	return b
}

func (b *Builder[T]) WithSeverity(severity validation.Severity) *Builder[T] {
	b.rule.severity = severity
	return b
}

// WithFailure sets code, message and severity at once.
func (b *Builder[T]) WithFailure(f Failure) *Builder[T] {
	return b.WithErrorCode(f.Code).WithMessage(f.Message).WithSeverity(f.Severity)
}
