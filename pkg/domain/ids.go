// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "domainkit/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing a TenantID where an EntityID is expected.
type (
	EntityID      uuid.UUID
	TenantID      uuid.UUID
	CorrelationID uuid.UUID
	EventID       uuid.UUID
)

// New functions generate random (v4) identifiers.

func NewEntityID() EntityID           { return EntityID(uuid.New()) }
func NewTenantID() TenantID           { return TenantID(uuid.New()) }
func NewCorrelationID() CorrelationID { return CorrelationID(uuid.New()) }
func NewEventID() EventID             { return EventID(uuid.New()) }

// Parse functions - use at trust boundaries (batch files, API inputs).

func ParseEntityID(s string) (EntityID, error) {
	id, err := parseUUID(s, "entity ID")
	return EntityID(id), err
}

func ParseTenantID(s string) (TenantID, error) {
	id, err := parseUUID(s, "tenant ID")
	return TenantID(id), err
}

func ParseCorrelationID(s string) (CorrelationID, error) {
	id, err := parseUUID(s, "correlation ID")
	return CorrelationID(id), err
}

func ParseEventID(s string) (EventID, error) {
	id, err := parseUUID(s, "event ID")
	return EventID(id), err
}

// String methods - for logging and debugging.

func (id EntityID) String() string      { return uuid.UUID(id).String() }
func (id TenantID) String() string      { return uuid.UUID(id).String() }
func (id CorrelationID) String() string { return uuid.UUID(id).String() }
func (id EventID) String() string       { return uuid.UUID(id).String() }

// IsNil checks - the "required" specification predicates are built on these.

func (id EntityID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id TenantID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id CorrelationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id EventID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }

// parseUUID is the shared parsing logic.
// Nil UUIDs are accepted: an absent identifier is a validation finding reported
// by the specification layer, not a parse failure.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return id, nil
}
