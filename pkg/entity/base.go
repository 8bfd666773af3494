// Package entity provides the lifecycle core every domain entity embeds:
// identity, tenant scoping, audit trail, a registry version used for
// optimistic concurrency, and the entity's own validation messages.
//
// A concrete entity embeds Base and is built with NewBase:
//
//	type Customer struct {
//		entity.Base
//		name string
//	}
//
//	func NewCustomer(clk clock.Clock) *Customer {
//		return &Customer{Base: entity.NewBase(clk)}
//	}
//
// The mutators on Base are meant to be called from the concrete entity's own
// domain methods. Invalid state is never reported as an error: it accumulates
// as validation messages that callers inspect before persisting.
package entity

import (
	"time"

	"domainkit/pkg/clock"
	id "domainkit/pkg/domain"
	dErrors "domainkit/pkg/domain-errors"
	"domainkit/pkg/validation"
)

// Entity is implemented by every type that embeds Base.
type Entity interface {
	EntityBase() *Base
}

// Base is the state shared by all domain entities. The zero value is not
// usable; build one with NewBase.
//
// Base is not safe for concurrent mutation. Serialize access to an entity,
// typically one entity per logical operation.
type Base struct {
	clock           clock.Clock
	id              id.EntityID
	tenantID        id.TenantID
	auditableInfo   AuditableInfo
	registryVersion time.Time
	validationInfo  validation.Info
}

// NewBase returns an unregistered Base. It panics when clk is nil: a missing
// clock is a wiring mistake, not a business outcome.
func NewBase(clk clock.Clock) Base {
	requireClock(clk)
	return Base{clock: clk}
}

func requireClock(clk clock.Clock) {
	if clk == nil {
		panic(dErrors.New(dErrors.CodeMissingDependency, "entity: clock is required"))
	}
}

// EntityBase exposes the embedded Base; it is promoted onto concrete entities
// so that they satisfy Entity.
func (b *Base) EntityBase() *Base { return b }

func (b *Base) ID() id.EntityID              { return b.id }
func (b *Base) TenantID() id.TenantID        { return b.tenantID }
func (b *Base) AuditableInfo() AuditableInfo { return b.auditableInfo.clone() }
func (b *Base) RegistryVersion() time.Time   { return b.registryVersion }
func (b *Base) Clock() clock.Clock           { return b.clock }

// IsRegistered reports whether the entity has an identity.
func (b *Base) IsRegistered() bool { return !b.id.IsNil() }

// ValidationInfo returns a snapshot of the entity's validation messages.
// Mutating the snapshot does not affect the entity; use the Add methods.
func (b *Base) ValidationInfo() *validation.Info {
	return b.validationInfo.DeepClone()
}

// RegisterNew gives the entity a fresh identity and stamps the creation audit
// fields and registry version with a single clock reading. Calling it again
// discards the previous identity.
//
// tenantID is not checked here; run a validator for that.
func (b *Base) RegisterNew(tenantID id.TenantID, executionUser, sourcePlatform string, correlationID id.CorrelationID) {
	now := b.clock.Now().UTC()

	b.id = id.NewEntityID()
	b.tenantID = tenantID
	b.auditableInfo = NewAuditableInfo(
		executionUser,
		now,
		nil,
		nil,
		sourcePlatform,
		correlationID,
	)
	b.registryVersion = now
}

// SetExistingInfo restores a previously persisted identity, audit trail and
// registry version verbatim. It neither reads the clock nor validates.
func (b *Base) SetExistingInfo(
	entityID id.EntityID,
	tenantID id.TenantID,
	createdBy string,
	createdAt time.Time,
	lastUpdatedBy *string,
	lastUpdatedAt *time.Time,
	lastSourcePlatform string,
	registryVersion time.Time,
	lastCorrelationID id.CorrelationID,
) {
	b.id = entityID
	b.tenantID = tenantID
	b.auditableInfo = NewAuditableInfo(
		createdBy,
		createdAt,
		lastUpdatedBy,
		lastUpdatedAt,
		lastSourcePlatform,
		lastCorrelationID,
	)
	b.registryVersion = registryVersion
}

// RegisterModification keeps the creation fields, records who changed the
// entity and from where, and re-stamps lastUpdatedAt and the registry version
// with a single clock reading.
//
// The registry version comes straight from the clock. Two modifications
// within one clock tick produce equal versions; use a clock with enough
// resolution (or clock.Stepping) when that matters.
func (b *Base) RegisterModification(executionUser, sourcePlatform string, correlationID id.CorrelationID) {
	now := b.clock.Now().UTC()

	b.auditableInfo = NewAuditableInfo(
		b.auditableInfo.createdBy,
		b.auditableInfo.createdAt,
		&executionUser,
		&now,
		sourcePlatform,
		correlationID,
	)
	b.registryVersion = now
}
