package input_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	id "domainkit/pkg/domain"
	"domainkit/pkg/input"
	"domainkit/pkg/validation"
	"domainkit/pkg/validation/rules"
)

type dummyInput struct {
	input.Base
	Note string
}

func newDummyInput(tenantID id.TenantID, executionUser, sourcePlatform string, correlationID id.CorrelationID) dummyInput {
	return dummyInput{Base: input.NewBase(tenantID, executionUser, sourcePlatform, correlationID)}
}

type InputSuite struct {
	suite.Suite
	validator *input.BaseValidator[dummyInput]
}

func TestInputSuite(t *testing.T) {
	suite.Run(t, new(InputSuite))
}

func (s *InputSuite) SetupTest() {
	s.validator = input.NewBaseValidator[dummyInput](input.NewSpecifications(), nil)
}

func (s *InputSuite) TestConstruction() {
	tenantID := id.NewTenantID()
	correlationID := id.NewCorrelationID()

	in := newDummyInput(tenantID, "marcelo.castelo", "dummyPlatform", correlationID)

	s.Equal(tenantID, in.TenantID())
	s.Equal("marcelo.castelo", in.ExecutionUser())
	s.Equal("dummyPlatform", in.SourcePlatform())
	s.Equal(correlationID, in.CorrelationID())
	s.Equal(in.Base, in.InputBase())
}

func (s *InputSuite) TestValidAtMaximumLength() {
	in := newDummyInput(id.NewTenantID(), strings.Repeat("a", 150), strings.Repeat("a", 150), id.NewCorrelationID())

	r := s.validator.Validate(in)

	s.True(r.IsValid())
	s.False(r.HasInformationMessages())
	s.False(r.HasWarningMessages())
	s.False(r.HasErrorMessages())
	s.False(r.HasValidationMessage())
	s.Empty(r.Messages())
}

func (s *InputSuite) TestRequiredFields() {
	in := newDummyInput(id.TenantID{}, "", "", id.CorrelationID{})

	r := s.validator.Validate(in)

	s.False(r.IsValid())
	s.True(r.HasErrorMessages())
	s.True(r.HasValidationMessage())
	msgs := r.Messages()
	s.Require().Len(msgs, 4)
	s.Equal(input.ShouldHaveTenantID.Code, msgs[0].Code())
	s.Equal(input.ShouldHaveExecutionUser.Code, msgs[1].Code())
	s.Equal(input.ShouldHaveSourcePlatform.Code, msgs[2].Code())
	s.Equal(input.ShouldHaveCorrelationID.Code, msgs[3].Code())
	for _, m := range msgs {
		s.Equal(validation.SeverityError, m.Severity())
	}
}

func (s *InputSuite) TestMaximumLength() {
	in := newDummyInput(id.NewTenantID(), strings.Repeat("a", 151), strings.Repeat("a", 151), id.NewCorrelationID())

	r := s.validator.Validate(in)

	s.False(r.IsValid())
	msgs := r.Messages()
	s.Require().Len(msgs, 2)
	s.Equal(input.ShouldHaveExecutionUserWithValidLength.Code, msgs[0].Code())
	s.Equal(input.ShouldHaveSourcePlatformWithValidLength.Code, msgs[1].Code())
}

func (s *InputSuite) TestWhitespaceCountsAsMissing() {
	in := newDummyInput(id.NewTenantID(), "   ", "\t", id.NewCorrelationID())

	msgs := s.validator.Validate(in).Messages()

	s.Require().Len(msgs, 2)
	s.Equal(input.ShouldHaveExecutionUser.Code, msgs[0].Code())
	s.Equal(input.ShouldHaveSourcePlatform.Code, msgs[1].Code())
}

func (s *InputSuite) TestConcreteRulesAppendAfterBase() {
	v := input.NewBaseValidator(nil, func(r *rules.Validator[dummyInput]) {
		rules.RuleFor(r, "Note", func(in dummyInput) string { return in.Note }).
			Must(func(note string) bool { return note != "" }).
			WithErrorCode("DummyInputShouldHaveNote").
			WithSeverity(validation.SeverityInformation)
	})

	in := newDummyInput(id.TenantID{}, "user", "platform", id.NewCorrelationID())
	msgs := v.Validate(in).Messages()

	s.Require().Len(msgs, 2)
	s.Equal(input.ShouldHaveTenantID.Code, msgs[0].Code())
	s.Equal("DummyInputShouldHaveNote", msgs[1].Code())
	s.Equal(validation.SeverityInformation, msgs[1].Severity())
	s.Len(v.Rules(), 7)
}
