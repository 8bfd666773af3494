package entity

import (
	"time"

	id "domainkit/pkg/domain"
)

// AuditableInfo records who created and last changed an entity, from where,
// and under which correlation. It is a value: lifecycle operations replace it
// wholesale and the getters hand out copies.
type AuditableInfo struct {
	createdBy          string
	createdAt          time.Time
	lastUpdatedBy      *string
	lastUpdatedAt      *time.Time
	lastSourcePlatform string
	lastCorrelationID  id.CorrelationID
}

// NewAuditableInfo builds an AuditableInfo. lastUpdatedBy and lastUpdatedAt
// are nil until the entity is first modified.
func NewAuditableInfo(
	createdBy string,
	createdAt time.Time,
	lastUpdatedBy *string,
	lastUpdatedAt *time.Time,
	lastSourcePlatform string,
	lastCorrelationID id.CorrelationID,
) AuditableInfo {
	return AuditableInfo{
		createdBy:          createdBy,
		createdAt:          createdAt,
		lastUpdatedBy:      copyPtr(lastUpdatedBy),
		lastUpdatedAt:      copyPtr(lastUpdatedAt),
		lastSourcePlatform: lastSourcePlatform,
		lastCorrelationID:  lastCorrelationID,
	}
}

func (a AuditableInfo) CreatedBy() string                   { return a.createdBy }
func (a AuditableInfo) CreatedAt() time.Time                { return a.createdAt }
func (a AuditableInfo) LastUpdatedBy() *string              { return copyPtr(a.lastUpdatedBy) }
func (a AuditableInfo) LastUpdatedAt() *time.Time           { return copyPtr(a.lastUpdatedAt) }
func (a AuditableInfo) LastSourcePlatform() string          { return a.lastSourcePlatform }
func (a AuditableInfo) LastCorrelationID() id.CorrelationID { return a.lastCorrelationID }

// IsModified reports whether the entity has been modified since registration.
func (a AuditableInfo) IsModified() bool {
	return a.lastUpdatedAt != nil
}

// clone returns an AuditableInfo that shares no pointers with a.
func (a AuditableInfo) clone() AuditableInfo {
	return NewAuditableInfo(
		a.createdBy,
		a.createdAt,
		a.lastUpdatedBy,
		a.lastUpdatedAt,
		a.lastSourcePlatform,
		a.lastCorrelationID,
	)
}

func copyPtr[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
