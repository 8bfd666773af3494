package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"domainkit/internal/customer/models"
	"domainkit/pkg/clock"
	id "domainkit/pkg/domain"
	"domainkit/pkg/entity"
	"domainkit/pkg/input"
	"domainkit/pkg/validation"
)

type ValidatorsSuite struct {
	suite.Suite
	clk *clock.Stepping
}

func TestValidatorsSuite(t *testing.T) {
	suite.Run(t, new(ValidatorsSuite))
}

func (s *ValidatorsSuite) SetupTest() {
	s.clk = clock.NewStepping(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), time.Millisecond)
}

func (s *ValidatorsSuite) TestRegisterInput() {
	v := models.NewRegisterCustomerInputValidator(input.NewSpecifications())
	envelope := input.NewBase(id.NewTenantID(), "marcelo.castelo", "backoffice", id.NewCorrelationID())

	tests := []struct {
		name  string
		in    models.RegisterCustomerInput
		codes []string
	}{
		{
			name: "valid",
			in:   models.NewRegisterCustomerInput(envelope, "Ana", "ana@example.com"),
		},
		{
			name:  "missing name and email",
			in:    models.NewRegisterCustomerInput(envelope, " ", ""),
			codes: []string{models.ShouldHaveName.Code, models.ShouldHaveEmail.Code},
		},
		{
			name:  "name too long and malformed email",
			in:    models.NewRegisterCustomerInput(envelope, strings.Repeat("á", 151), "not-an-email"),
			codes: []string{models.ShouldHaveNameWithValidLength.Code, models.ShouldHaveValidEmail.Code},
		},
		{
			name: "envelope errors come first",
			in: models.NewRegisterCustomerInput(
				input.NewBase(id.TenantID{}, "", "backoffice", id.NewCorrelationID()),
				"", "ana@example.com",
			),
			codes: []string{input.ShouldHaveTenantID.Code, input.ShouldHaveExecutionUser.Code, models.ShouldHaveName.Code},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			r := v.Validate(tt.in)
			var got []string
			for _, m := range r.Messages() {
				got = append(got, m.Code())
			}
			s.Equal(tt.codes, got)
			s.Equal(len(tt.codes) == 0, r.IsValid())
		})
	}
}

func (s *ValidatorsSuite) TestNameAtMaximumLength() {
	v := models.NewRegisterCustomerInputValidator(nil)
	in := models.NewRegisterCustomerInput(
		input.NewBase(id.NewTenantID(), "u", "p", id.NewCorrelationID()),
		strings.Repeat("á", models.MaxNameLength),
		"ana@example.com",
	)
	s.True(v.Validate(in).IsValid())
}

func (s *ValidatorsSuite) TestChangeNameInput() {
	v := models.NewChangeCustomerNameInputValidator(input.NewSpecifications())
	envelope := input.NewBase(id.NewTenantID(), "u", "p", id.NewCorrelationID())

	r := v.Validate(models.NewChangeCustomerNameInput(envelope, id.EntityID{}, ""))
	s.Require().Len(r.Messages(), 2)
	s.Equal(models.ShouldHaveCustomerID.Code, r.Messages()[0].Code())
	s.Equal(models.ShouldHaveName.Code, r.Messages()[1].Code())

	s.True(v.Validate(models.NewChangeCustomerNameInput(envelope, id.NewEntityID(), "Ana")).IsValid())
}

func (s *ValidatorsSuite) TestEntityValidator() {
	v := models.NewValidator(entity.NewSpecifications(s.clk))

	unregistered := models.NewCustomer(s.clk)
	r := v.Validate(unregistered)
	s.False(r.IsValid())
	last := r.Messages()[r.Len()-2:]
	s.Equal(models.ShouldHaveName.Code, last[0].Code())
	s.Equal(models.ShouldHaveEmail.Code, last[1].Code())

	c := models.NewCustomer(s.clk)
	c.RegisterNew(
		models.NewRegisterCustomerInput(input.NewBase(id.NewTenantID(), "u", "p", id.NewCorrelationID()), "Ana", "ana@example.com"),
		models.NewEventFactory(s.clk),
	)
	s.True(c.Validate(func() validation.Result { return v.Validate(c) }))
	s.False(c.ValidationInfo().HasValidationMessage())
	s.Len(v.Rules(), 16)
}
