package input

import (
	id "domainkit/pkg/domain"
	limits "domainkit/pkg/platform/validation"
	"domainkit/pkg/validation"
)

// Specifications holds the predicates behind the input base rules. They
// mirror the entity specifications for the fields an input carries.
type Specifications struct{}

func NewSpecifications() *Specifications {
	return &Specifications{}
}

func (s *Specifications) TenantIDShouldRequired(tenantID id.TenantID) bool {
	return !tenantID.IsNil()
}

func (s *Specifications) ExecutionUserShouldRequired(executionUser string) bool {
	return validation.Satisfies(executionUser, "notblank")
}

func (s *Specifications) ExecutionUserShouldValid(executionUser string) bool {
	return validation.Satisfies(executionUser, limits.MaxLengthTag(limits.MaxExecutionUserLength))
}

func (s *Specifications) SourcePlatformShouldRequired(sourcePlatform string) bool {
	return validation.Satisfies(sourcePlatform, "notblank")
}

func (s *Specifications) SourcePlatformShouldValid(sourcePlatform string) bool {
	return validation.Satisfies(sourcePlatform, limits.MaxLengthTag(limits.MaxSourcePlatformLength))
}

func (s *Specifications) CorrelationIDShouldRequired(correlationID id.CorrelationID) bool {
	return !correlationID.IsNil()
}
