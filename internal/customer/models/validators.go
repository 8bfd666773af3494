package models

import (
	id "domainkit/pkg/domain"
	"domainkit/pkg/entity"
	"domainkit/pkg/input"
	limits "domainkit/pkg/platform/validation"
	"domainkit/pkg/validation"
	"domainkit/pkg/validation/rules"
)

// MaxNameLength bounds customer names, counted in runes.
const MaxNameLength = 150

var (
	ShouldHaveName = rules.Failure{
		Code:     "CustomerShouldHaveName",
		Message:  "Customer should have name",
		Severity: validation.SeverityError,
	}
	ShouldHaveNameWithValidLength = rules.Failure{
		Code:     "CustomerShouldHaveNameWithValidLength",
		Message:  "Customer should have name with valid length",
		Severity: validation.SeverityError,
	}
	ShouldHaveEmail = rules.Failure{
		Code:     "CustomerShouldHaveEmail",
		Message:  "Customer should have email",
		Severity: validation.SeverityError,
	}
	ShouldHaveValidEmail = rules.Failure{
		Code:     "CustomerShouldHaveValidEmail",
		Message:  "Customer should have valid email",
		Severity: validation.SeverityError,
	}
	ShouldHaveCustomerID = rules.Failure{
		Code:     "ChangeCustomerNameInputShouldHaveCustomerId",
		Message:  "Input should reference a customer",
		Severity: validation.SeverityError,
	}
)

func nameRequired(name string) bool   { return validation.Satisfies(name, "notblank") }
func nameValid(name string) bool      { return validation.Satisfies(name, limits.MaxLengthTag(MaxNameLength)) }
func emailRequired(email string) bool { return validation.Satisfies(email, "notblank") }
func emailValid(email string) bool    { return validation.Satisfies(email, "email") }

func nameRules[T any](v *rules.Validator[T], name func(T) string) {
	rules.RuleFor(v, "Name", name).
		Must(nameRequired).
		WithFailure(ShouldHaveName)
	rules.RuleFor(v, "Name", name).
		Must(nameValid).
		When(func(t T) bool { return nameRequired(name(t)) }).
		WithFailure(ShouldHaveNameWithValidLength)
}

func emailRules[T any](v *rules.Validator[T], email func(T) string) {
	rules.RuleFor(v, "Email", email).
		Must(emailRequired).
		WithFailure(ShouldHaveEmail)
	rules.RuleFor(v, "Email", email).
		Must(emailValid).
		When(func(t T) bool { return emailRequired(email(t)) }).
		WithFailure(ShouldHaveValidEmail)
}

// NewValidator checks the entity base rules followed by the customer fields.
func NewValidator(specs *entity.Specifications) *entity.BaseValidator[*Customer] {
	return entity.NewBaseValidator(specs, func(v *rules.Validator[*Customer]) {
		nameRules(v, (*Customer).Name)
		emailRules(v, (*Customer).Email)
	})
}

func NewRegisterCustomerInputValidator(specs *input.Specifications) *input.BaseValidator[RegisterCustomerInput] {
	return input.NewBaseValidator(specs, func(v *rules.Validator[RegisterCustomerInput]) {
		nameRules(v, func(in RegisterCustomerInput) string { return in.Name })
		emailRules(v, func(in RegisterCustomerInput) string { return in.Email })
	})
}

func NewChangeCustomerNameInputValidator(specs *input.Specifications) *input.BaseValidator[ChangeCustomerNameInput] {
	return input.NewBaseValidator(specs, func(v *rules.Validator[ChangeCustomerNameInput]) {
		rules.RuleFor(v, "CustomerId", func(in ChangeCustomerNameInput) id.EntityID { return in.CustomerID }).
			Must(func(customerID id.EntityID) bool { return !customerID.IsNil() }).
			WithFailure(ShouldHaveCustomerID)
		nameRules(v, func(in ChangeCustomerNameInput) string { return in.Name })
	})
}
