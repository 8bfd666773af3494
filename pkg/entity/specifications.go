package entity

import (
	"time"

	"domainkit/pkg/clock"
	id "domainkit/pkg/domain"
	limits "domainkit/pkg/platform/validation"
	"domainkit/pkg/validation"
)

// Specifications holds the field-level predicates behind the entity base
// rules. "Required" predicates test presence; "Valid" predicates test presence
// plus shape, so a validator can report "missing" and "malformed" separately.
type Specifications struct {
	clock clock.Clock
}

// NewSpecifications panics when clk is nil.
func NewSpecifications(clk clock.Clock) *Specifications {
	requireClock(clk)
	return &Specifications{clock: clk}
}

func (s *Specifications) IDShouldRequired(entityID id.EntityID) bool {
	return !entityID.IsNil()
}

func (s *Specifications) TenantIDShouldRequired(tenantID id.TenantID) bool {
	return !tenantID.IsNil()
}

func (s *Specifications) CreatedAtShouldRequired(createdAt time.Time) bool {
	return !createdAt.IsZero()
}

func (s *Specifications) CreatedAtShouldValid(createdAt time.Time) bool {
	return s.CreatedAtShouldRequired(createdAt) && s.notInFuture(createdAt)
}

func (s *Specifications) CreatedByShouldRequired(createdBy string) bool {
	return validation.Satisfies(createdBy, "notblank")
}

func (s *Specifications) CreatedByShouldValid(createdBy string) bool {
	return validation.Satisfies(createdBy, limits.MaxLengthTag(limits.MaxCreatedByLength))
}

func (s *Specifications) LastUpdatedAtShouldRequired(lastUpdatedAt *time.Time) bool {
	return lastUpdatedAt != nil && !lastUpdatedAt.IsZero()
}

// LastUpdatedAtShouldValid requires lastUpdatedAt to be after createdAt and
// not in the future.
func (s *Specifications) LastUpdatedAtShouldValid(lastUpdatedAt *time.Time, createdAt time.Time) bool {
	return s.LastUpdatedAtShouldRequired(lastUpdatedAt) &&
		lastUpdatedAt.After(createdAt) &&
		s.notInFuture(*lastUpdatedAt)
}

func (s *Specifications) LastUpdatedByShouldRequired(lastUpdatedBy *string) bool {
	return lastUpdatedBy != nil && validation.Satisfies(*lastUpdatedBy, "notblank")
}

func (s *Specifications) LastUpdatedByShouldValid(lastUpdatedBy *string) bool {
	return lastUpdatedBy != nil &&
		validation.Satisfies(*lastUpdatedBy, limits.MaxLengthTag(limits.MaxLastUpdatedByLength))
}

func (s *Specifications) LastSourcePlatformShouldRequired(lastSourcePlatform string) bool {
	return validation.Satisfies(lastSourcePlatform, "notblank")
}

func (s *Specifications) LastSourcePlatformShouldValid(lastSourcePlatform string) bool {
	return validation.Satisfies(lastSourcePlatform, limits.MaxLengthTag(limits.MaxLastSourcePlatformLength))
}

func (s *Specifications) RegistryVersionShouldRequired(registryVersion time.Time) bool {
	return !registryVersion.IsZero()
}

func (s *Specifications) RegistryVersionShouldValid(registryVersion time.Time) bool {
	return s.RegistryVersionShouldRequired(registryVersion) && s.notInFuture(registryVersion)
}

func (s *Specifications) notInFuture(t time.Time) bool {
	return !t.After(s.clock.Now())
}
